package sim

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

// TestMain silences the per-reference debug log and the end-of-run info line.
// DEBUG_TESTS=1 go test ./sim/... -v restores them.
func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}
