package courses

import (
	"context"
	"sync"
)

// DefaultWorkers bounds concurrent per-skill lookups.
const DefaultWorkers = 4

// MaxPerSkill caps how many candidates a single skill contributes.
const MaxPerSkill = 6

// Lookup resolves curated course candidates for each skill using a
// bounded worker pool. Results preserve the input skill order; skills
// without curated entries map to a nil slice. Each worker writes only
// its own result slot, so no locking is needed beyond the semaphore.
func Lookup(ctx context.Context, skillIDs []string, workers int) map[string][]string {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([][]string, len(skillIDs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, id := range skillIDs {
		select {
		case <-ctx.Done():
			goto done
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = Candidates(id, MaxPerSkill)
		}(i, id)
	}

done:
	wg.Wait()

	out := make(map[string][]string, len(skillIDs))
	for i, id := range skillIDs {
		out[id] = results[i]
	}
	return out
}
