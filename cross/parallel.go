package cross

import (
	"context"
	"sync"

	"github.com/carbocation/mendelcross/genotype"
)

// Offspring are drawn in chunks of this size between cancellation checks.
const chunkSize = 4096

// SampleParallel spreads n offspring across workers. Worker w owns a generator
// seeded with seed+w, so the result is reproducible for a given seed and
// worker count. The last worker takes the remainder. With one worker the
// result is identical to Sample(NewRand(seed), p1, p2, n).
func SampleParallel(ctx context.Context, seed int64, p1, p2 genotype.Parent, n, workers int) (Distribution, error) {
	if err := ctx.Err(); err != nil {
		return Distribution{}, err
	}

	if workers <= 1 || n < workers {
		return sampleWithContext(ctx, NewRand(seed), p1, p2, n)
	}

	perWorker := n / workers
	remainder := n % workers

	parts := make([]Distribution, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		count := perWorker
		if w == workers-1 {
			count += remainder
		}

		wg.Add(1)
		go func(w, count int) {
			defer wg.Done()
			parts[w], errs[w] = sampleWithContext(ctx, NewRand(seed+int64(w)), p1, p2, count)
		}(w, count)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Distribution{}, err
		}
	}

	return merge(parts...), nil
}

func sampleWithContext(ctx context.Context, rng Source, p1, p2 genotype.Parent, n int) (Distribution, error) {
	parts := make([]Distribution, 0, n/chunkSize+1)
	for remaining := n; remaining > 0; remaining -= chunkSize {
		if err := ctx.Err(); err != nil {
			return Distribution{}, err
		}

		size := chunkSize
		if remaining < size {
			size = remaining
		}
		parts = append(parts, Sample(rng, p1, p2, size))
	}

	return merge(parts...), nil
}
