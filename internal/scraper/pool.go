package scraper

import "sync"

// forEach runs fn(i) for every index in [0, n) using at most workers
// goroutines. Callers write results into index-tagged slots, so output order
// is fixed by request order no matter when each task completes.
func forEach(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(i)
		}(i)
	}

	wg.Wait()
}
