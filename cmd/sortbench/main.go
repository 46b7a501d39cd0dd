// Command sortbench times the adaptive merge sort against the standard
// library's stable sort on generated inputs, and verifies that both
// produce the same result.
//
// Usage:
//
//	sortbench [-n 100000] [-iterations 5] [-seed 1] [-pattern all] [-from 0] [-to -1] [-no-color]
//
// SORTBENCH_N and SORTBENCH_SEED override the defaults of -n and -seed.
package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/convox/logger"
	"github.com/fatih/color"
)

func envInt(name string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(name)); err == nil {
		return v
	}
	return def
}

func main() {
	var cfg config
	flag.IntVar(&cfg.n, "n", envInt("SORTBENCH_N", 100000), "number of elements per input")
	flag.IntVar(&cfg.iterations, "iterations", 5, "number of timed runs per pattern")
	seed := flag.Int("seed", envInt("SORTBENCH_SEED", 1), "random seed")
	flag.StringVar(&cfg.pattern, "pattern", "all", "input pattern, or all")
	flag.IntVar(&cfg.from, "from", 0, "start of the sorted range")
	flag.IntVar(&cfg.to, "to", -1, "end of the sorted range, -1 for n")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	cfg.seed = int64(*seed)
	if *noColor {
		color.NoColor = true
	}

	log := logger.New("ns=sortbench")
	if err := run(cfg, log, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
