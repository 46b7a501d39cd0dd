package main

import (
	"fmt"
	"io"
	"math/rand"
	stdsort "sort"
	"time"

	"github.com/convox/logger"
	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/adaptsort/internal/workload"
	"github.com/exascience/adaptsort/sort"
)

type config struct {
	n          int
	iterations int
	seed       int64
	pattern    string
	from, to   int
}

// timing summarizes the durations, in milliseconds, of repeated sorts.
type timing struct {
	mean, stddev, min float64
}

func summarize(ms []float64) timing {
	mean, stddev := stat.MeanStdDev(ms, nil)
	return timing{mean: mean, stddev: stddev, min: floats.Min(ms)}
}

func (t timing) String() string {
	return fmt.Sprintf("%8.3fms ±%7.3f (min %8.3f)", t.mean, t.stddev, t.min)
}

type result struct {
	pattern            workload.Pattern
	runs               int
	adaptive, standard timing
}

func (c config) patterns() ([]workload.Pattern, error) {
	if c.pattern == "all" {
		return workload.Patterns, nil
	}
	p, err := workload.ParsePattern(c.pattern)
	if err != nil {
		return nil, err
	}
	return []workload.Pattern{p}, nil
}

func (c config) bounds() (int, int) {
	if c.to < 0 {
		return c.from, c.n
	}
	return c.from, c.to
}

// smoke sorts a small fixed input and prints it.
func smoke(out io.Writer) error {
	s := []int{4, 5, 6, 3, 2, 1, 8, 3, 8}
	if err := sort.SortRange(s, 1, len(s)); err != nil {
		return errors.Wrap(err, "smoke")
	}
	fmt.Fprintf(out, "smoke: %v\n", s)
	return nil
}

func measure(c config, p workload.Pattern, r *rand.Rand, log *logger.Logger) (result, error) {
	from, to := c.bounds()
	res := result{pattern: p}
	adaptive := make([]float64, 0, c.iterations)
	standard := make([]float64, 0, c.iterations)
	for i := 0; i < c.iterations; i++ {
		org := workload.Ints(p, c.n, r)
		if i == 0 && to >= from && from >= 0 && to <= len(org) {
			res.runs = sort.CountRuns(org[from:to])
		}

		got := append([]int(nil), org...)
		start := time.Now()
		if err := sort.SortRange(got, from, to); err != nil {
			return res, errors.Wrapf(err, "pattern %v", p)
		}
		adaptive = append(adaptive, float64(time.Since(start).Nanoseconds())/1e6)

		want := append([]int(nil), org...)
		start = time.Now()
		stdsort.Stable(stdsort.IntSlice(want[from:to]))
		standard = append(standard, float64(time.Since(start).Nanoseconds())/1e6)

		for k := range want {
			if got[k] != want[k] {
				return res, errors.Errorf("pattern %v: mismatch at index %d: got %d, want %d", p, k, got[k], want[k])
			}
		}
	}
	res.adaptive = summarize(adaptive)
	res.standard = summarize(standard)
	log.At("measure").Logf("pattern=%s runs=%d adaptive=%0.3f standard=%0.3f", p, res.runs, res.adaptive.mean, res.standard.mean)
	return res, nil
}

func run(c config, log *logger.Logger, out io.Writer) error {
	if c.n < 0 || c.iterations < 1 {
		return errors.Errorf("invalid arguments: n=%d iterations=%d", c.n, c.iterations)
	}
	patterns, err := c.patterns()
	if err != nil {
		return err
	}
	if err := smoke(out); err != nil {
		return err
	}

	from, to := c.bounds()
	fmt.Fprintf(out, "elements: %s, range: [%s, %s), iterations: %d, seed: %d\n",
		humanize.Comma(int64(c.n)), humanize.Comma(int64(from)), humanize.Comma(int64(to)), c.iterations, c.seed)

	log = log.Start()
	r := rand.New(rand.NewSource(c.seed))
	pass := color.New(color.FgGreen).SprintFunc()
	for _, p := range patterns {
		res, err := measure(c, p, r, log.Replace("pattern", p.String()))
		if err != nil {
			fmt.Fprintf(out, "%-10s %s\n", p, color.RedString("FAIL"))
			return err
		}
		speedup := 0.0
		if res.adaptive.mean > 0 {
			speedup = res.standard.mean / res.adaptive.mean
		}
		fmt.Fprintf(out, "%-10s %s runs=%-8s adaptive %s  standard %s  x%.2f\n",
			p, pass("PASS"), humanize.Comma(int64(res.runs)), res.adaptive, res.standard, speedup)
	}
	log.Successf("patterns=%d", len(patterns))
	return nil
}
