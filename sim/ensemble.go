package sim

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Ensemble runs a process over many paths in parallel by splitting the
// columns into contiguous chunks, one worker per chunk. Every worker gets
// its own fork of the base process over a source seeded with
// DeriveSeed(base, chunk), so runs are reproducible for a fixed seed and
// worker count, and the base process's own stream is never touched.
type Ensemble struct {
	base    Forkable
	workers int
	seed    int64
}

// NewEnsemble wraps base for parallel generation. workers <= 0 means one
// per available CPU. seed is the ensemble's base seed, used when the
// request itself carries none; zero falls back to time entropy.
func NewEnsemble(base Forkable, workers int, seed int64) *Ensemble {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Ensemble{base: base, workers: workers, seed: seed}
}

type chunk struct {
	start, end int
}

func (e *Ensemble) Simulate(req Request) (Matrix, error) {
	chunks := e.chunks(req.Paths)
	base := e.baseSeed(req)
	logrus.Debugf("ensemble: %d paths over %d workers (base seed %d)", req.Paths, len(chunks), base)

	results := make([]Matrix, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for w, c := range chunks {
		wg.Add(1)
		go func(w int, c chunk) {
			defer wg.Done()

			reqCopy := req
			reqCopy.Paths = c.end - c.start
			reqCopy.Seed = 0

			proc := e.base.Fork(NewNormalSource(DeriveSeed(base, uint64(w))))
			results[w], errs[w] = proc.Simulate(reqCopy)
		}(w, c)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return e.stitch(req, chunks, results), nil
}

// SimulateWithVariance is the variance-surface analog of Simulate. It
// fails when the base process does not implement VarianceProcess.
func (e *Ensemble) SimulateWithVariance(req Request) (Matrix, Matrix, error) {
	chunks := e.chunks(req.Paths)
	base := e.baseSeed(req)
	logrus.Debugf("ensemble: %d variance paths over %d workers (base seed %d)", req.Paths, len(chunks), base)

	prices := make([]Matrix, len(chunks))
	variances := make([]Matrix, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for w, c := range chunks {
		wg.Add(1)
		go func(w int, c chunk) {
			defer wg.Done()

			reqCopy := req
			reqCopy.Paths = c.end - c.start
			reqCopy.Seed = 0

			proc := e.base.Fork(NewNormalSource(DeriveSeed(base, uint64(w))))
			vp, ok := proc.(VarianceProcess)
			if !ok {
				errs[w] = fmt.Errorf("%w: %T", ErrNoVarianceSurface, proc)
				return
			}
			prices[w], variances[w], errs[w] = vp.SimulateWithVariance(reqCopy)
		}(w, c)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}

	return e.stitch(req, chunks, prices), e.stitch(req, chunks, variances), nil
}

func (e *Ensemble) baseSeed(req Request) int64 {
	if req.Seed != 0 {
		return req.Seed
	}
	if e.seed != 0 {
		return e.seed
	}
	return time.Now().UnixNano()
}

func (e *Ensemble) chunks(paths int) []chunk {
	if paths <= 0 {
		return nil
	}
	n := e.workers
	if n > paths {
		n = paths
	}
	size := paths / n
	rem := paths % n

	out := make([]chunk, 0, n)
	start := 0
	for w := 0; w < n; w++ {
		end := start + size
		if w < rem {
			end++
		}
		out = append(out, chunk{start, end})
		start = end
	}
	return out
}

func (e *Ensemble) stitch(req Request, chunks []chunk, parts []Matrix) Matrix {
	rows := req.Steps + 1
	if req.Steps < 1 {
		rows = 1
	}
	out := NewMatrix(rows, req.Paths)
	for w, c := range chunks {
		for i := range out {
			copy(out[i][c.start:c.end], parts[w][i])
		}
	}
	return out
}
