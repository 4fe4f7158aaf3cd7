// Package export writes simulation traces as JSON Lines, optionally compressed.
//
// The stream starts with one Header line followed by one StepRecord per line.
// Long generated reference strings produce traces dominated by repeated frame
// snapshots, which compress well under lz4 or snappy.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"

	"github.com/inference-sim/pagesim/sim"
)

// Codec is the compression applied to an exported trace.
type Codec string

const (
	CodecNone   Codec = "none"
	CodecLZ4    Codec = "lz4"
	CodecSnappy Codec = "snappy"
)

// ParseCodec validates a codec name. The empty string means none.
func ParseCodec(name string) (Codec, error) {
	switch c := Codec(strings.ToLower(name)); c {
	case "", CodecNone:
		return CodecNone, nil
	case CodecLZ4, CodecSnappy:
		return c, nil
	default:
		return "", fmt.Errorf("unsupported trace codec %q; valid: none, lz4, snappy", name)
	}
}

// CodecForPath infers the codec from a file extension (.lz4, .sz or .snappy).
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lz4":
		return CodecLZ4
	case ".sz", ".snappy":
		return CodecSnappy
	default:
		return CodecNone
	}
}

// Header is the first line of an exported trace.
type Header struct {
	Policy     sim.PolicyKind `json:"policy"`
	Frames     int            `json:"frames"`
	References int            `json:"references"`
	Faults     int            `json:"faults"`
}

// nopCloser lets the uncompressed path share the Close-to-flush logic.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newCodecWriter(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecNone, "":
		return nopCloser{w}, nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported trace codec %q", codec)
	}
}

func newCodecReader(r io.Reader, codec Codec) (io.Reader, error) {
	switch codec {
	case CodecNone, "":
		return r, nil
	case CodecLZ4:
		return lz4.NewReader(r), nil
	case CodecSnappy:
		return snappy.NewReader(r), nil
	default:
		return nil, fmt.Errorf("unsupported trace codec %q", codec)
	}
}

// WriteResult writes the header and every step of result to w through codec.
func WriteResult(w io.Writer, codec Codec, result *sim.Result) error {
	cw, err := newCodecWriter(w, codec)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(cw)
	enc := json.NewEncoder(bw)

	header := Header{
		Policy:     result.Policy,
		Frames:     result.Capacity,
		References: len(result.Steps),
		Faults:     result.Faults,
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}
	for _, st := range result.Steps {
		if err := enc.Encode(st); err != nil {
			return fmt.Errorf("writing step %d: %w", st.Clock, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing trace: %w", err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("closing %s stream: %w", codec, err)
	}
	return nil
}

// ReadResult reads a trace written by WriteResult. The returned Result carries
// no eviction trace.
func ReadResult(r io.Reader, codec Codec) (*sim.Result, error) {
	cr, err := newCodecReader(r, codec)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(cr)

	var header Header
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("reading trace header: %w", err)
	}
	result := &sim.Result{
		Policy:   header.Policy,
		Capacity: header.Frames,
		Faults:   header.Faults,
		Steps:    make([]sim.StepRecord, 0, header.References),
	}
	for {
		var st sim.StepRecord
		if err := dec.Decode(&st); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("reading step %d: %w", len(result.Steps), err)
		}
		result.Steps = append(result.Steps, st)
	}
	if len(result.Steps) != header.References {
		return nil, fmt.Errorf("trace truncated: header lists %d references, read %d", header.References, len(result.Steps))
	}
	return result, nil
}
