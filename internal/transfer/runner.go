package transfer

import (
	"context"
	"sync"

	"github.com/imagenai/imagen-ai-sdk/imagentypes"
)

// runTasks executes n index-based tasks with at most concurrency running at
// once. Tasks record their own outcomes; runTasks only reports cancellation.
// When the context is cancelled, tasks not yet submitted never start and
// in-flight tasks are waited for before returning.
func runTasks(ctx context.Context, concurrency, n int, task func(ctx context.Context, i int)) error {
	if concurrency <= 0 {
		concurrency = imagentypes.DefaultConcurrency
	}

	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		}

		wg.Add(1)
		go func(i int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			select {
			case <-ctx.Done():
				return
			default:
			}

			task(ctx, i)
		}(i)
	}

	wg.Wait()
	return ctx.Err()
}
