// Package batch scans many independent polygon pairs concurrently.
//
// Every scan is a pure function of its pair, so pairs can be handed to any
// worker in any order. Results are written back by index, which keeps the
// report in the same order as the input.
package batch

import (
	"context"
	"runtime"

	"github.com/golang/glog"
	"github.com/osuushi/intersections/advanced"
	"github.com/osuushi/intersections/polyio"
	"golang.org/x/sync/errgroup"
)

// Runner scans batches with a bounded number of workers.
type Runner struct {
	workers int
}

// New returns a Runner using the given number of workers. Zero or less means
// one worker per CPU.
func New(workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{workers: workers}
}

// Workers returns the worker count the runner was configured with.
func (r *Runner) Workers() int {
	return r.workers
}

// Run scans every pair. A pair with invalid input gets an error in its report
// entry; it does not stop the batch. The only error returned is from ctx.
func (r *Runner) Run(ctx context.Context, pairs []polyio.Pair) (*polyio.Report, error) {
	report := &polyio.Report{Pairs: make([]polyio.PairReport, len(pairs))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range pairs {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Pairs[i] = scanPair(i, pairs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

func scanPair(index int, pair polyio.Pair) polyio.PairReport {
	result := polyio.PairReport{Name: pair.Name}
	a, b, err := pair.Polygons()
	if err != nil {
		glog.Warningf("pair %d (%s): %v", index, pair.Name, err)
		result.Error = err.Error()
		return result
	}

	found := advanced.Scan(a, b)
	result.Count = len(found)
	result.Intersections = found.Flatten()
	if glog.V(1) {
		glog.Infof("pair %d (%s): %d edges x %d edges, %d intersections",
			index, pair.Name, len(a.Points), len(b.Points), result.Count)
	}
	return result
}
