// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/emer/emergent/v2/timer"
	"github.com/emer/empi/v2/empi"
	"github.com/emer/empi/v2/mpi"
)

// Pool runs independent jobs on a fixed number of worker goroutines.
// Each job must only write to its own result slot.
type Pool struct {

	// number of parallel threads (go routines) to use
	NThreads int

	// per-thread timers
	ThrTimes []timer.Time `view:"-"`

	// per-thread number of jobs run
	ThrJobs []int `view:"-"`

	// wait group for synchronizing threaded calls
	WaitGp sync.WaitGroup `view:"-"`
}

// NewPool returns a pool with nthr threads: 0 or less means one per CPU
func NewPool(nthr int) *Pool {
	if nthr <= 0 {
		nthr = runtime.NumCPU()
	}
	pl := &Pool{NThreads: nthr}
	pl.ThrTimes = make([]timer.Time, nthr)
	pl.ThrJobs = make([]int, nthr)
	return pl
}

// Run calls fun for every job in [st, ed), spread over the threads.
// It stops handing out jobs once ctx is done, and returns ctx.Err() in that case.
func (pl *Pool) Run(ctx context.Context, st, ed int, fun func(job int)) error {
	if pl.NThreads <= 1 {
		for j := st; j < ed; j++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fun(j)
			pl.ThrJobs[0]++
		}
		return nil
	}
	jobs := make(chan int)
	for th := 0; th < pl.NThreads; th++ {
		pl.WaitGp.Add(1)
		go pl.thrWorker(th, jobs, fun)
	}
	var err error
	for j := st; j < ed; j++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case jobs <- j:
		}
		if err != nil {
			break
		}
	}
	close(jobs)
	pl.WaitGp.Wait()
	return err
}

func (pl *Pool) thrWorker(th int, jobs <-chan int, fun func(job int)) {
	defer pl.WaitGp.Done()
	for j := range jobs {
		pl.ThrTimes[th].Start()
		fun(j)
		pl.ThrTimes[th].Stop()
		pl.ThrJobs[th]++
	}
}

// TimerReport reports the amount of time and jobs run in each thread
func (pl *Pool) TimerReport() {
	if pl.NThreads <= 1 {
		return
	}
	mpi.Printf("\n\tThr\tJobs\tTotal Secs\tPct\n")
	pcts := make([]float64, pl.NThreads)
	tot := 0.0
	for th := 0; th < pl.NThreads; th++ {
		pcts[th] = pl.ThrTimes[th].TotalSecs()
		tot += pcts[th]
	}
	for th := 0; th < pl.NThreads; th++ {
		mpi.Printf("\t%v\t%v\t%6.4g\t%6.4g\n", th, pl.ThrJobs[th], pcts[th], 100*(pcts[th]/tot))
	}
}

// mpiRange returns the range of the n jobs allocated to this process
func mpiRange(n int) (st, ed int, err error) {
	if mpi.WorldSize() <= 1 {
		return 0, n, nil
	}
	st, ed, err = empi.AllocN(n)
	if err != nil {
		return 0, 0, fmt.Errorf("sweep: allocating %d jobs over %d procs: %w", n, mpi.WorldSize(), err)
	}
	return st, ed, nil
}

// mpiSum sums vals across all processes, in place.  Each process must hold
// zeros outside of its own range.
func mpiSum(vals []float64) error {
	if mpi.WorldSize() <= 1 {
		return nil
	}
	comm, err := mpi.NewComm(nil)
	if err != nil {
		return fmt.Errorf("sweep: mpi comm: %w", err)
	}
	sum := make([]float64, len(vals))
	if err := comm.AllReduceF64(mpi.OpSum, sum, vals); err != nil {
		return fmt.Errorf("sweep: mpi all-reduce: %w", err)
	}
	copy(vals, sum)
	return nil
}
