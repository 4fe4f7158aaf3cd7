package sim

import "sync"

// Compare replays refs under each policy kind in parallel and returns the
// results in kinds order. Every run gets its own FrameTable and policy; refs
// is shared read-only.
func Compare(kinds []PolicyKind, refs []PageID, capacity int) ([]*Result, error) {
	sims := make([]*Simulator, len(kinds))
	for i, kind := range kinds {
		s, err := NewSimulator(SimConfig{Policy: kind, Capacity: capacity, References: refs})
		if err != nil {
			return nil, err
		}
		sims[i] = s
	}

	results := make([]*Result, len(kinds))
	var wg sync.WaitGroup
	for i, s := range sims {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.Run()
		}()
	}
	wg.Wait()
	return results, nil
}
