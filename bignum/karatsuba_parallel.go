package bignum

import (
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// karatsubaSem bounds how many Karatsuba sub-products run concurrently
// across the whole process: a process-wide worker-count semaphore caps
// fan-out rather than letting recursion depth alone determine goroutine
// count.
var karatsubaSem = semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))

// parallelSplit runs left and right concurrently if a semaphore slot is
// available, falling back to sequential execution under contention so deep
// recursion never blocks waiting for a slot that a shallower caller is
// holding.
func parallelSplit(left, right func() []word) (l, r []word) {
	if !karatsubaSem.TryAcquire(1) {
		return left(), right()
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer karatsubaSem.Release(1)
		r = right()
	}()
	l = left()
	wg.Wait()
	return l, r
}
