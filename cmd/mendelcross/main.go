package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/carbocation/mendelcross/compileinfo"
	_ "github.com/carbocation/mendelcross/compileinfoprint"
	"github.com/carbocation/mendelcross/cross"
	"github.com/carbocation/mendelcross/genotype"
	"github.com/carbocation/mendelcross/report"
)

const (
	MinOffspring     = 100
	MaxOffspring     = 10000
	DefaultOffspring = 1000
	DefaultParent    = "Aa"
)

var ErrOffspringOutOfRange = fmt.Errorf("number of offspring must be between %d and %d", MinOffspring, MaxOffspring)

// Options is everything one invocation needs, after flags and any config
// file have been merged.
type Options struct {
	Parent1    string
	Parent2    string
	Offspring  int
	Seed       int64
	SeedSet    bool
	Workers    int
	Replicates int
	Chart      string
	Table      string
	Bars       bool
	BarWidth   int
	Stats      bool
	Batch      string
}

// Simulate the offspring of a monohybrid cross
func main() {
	var opts Options
	var configPath string
	var version bool
	flag.StringVar(&opts.Parent1, "parent1", DefaultParent, "Genotype of parent 1: exactly two allele characters, e.g. Aa, AA or aa.")
	flag.StringVar(&opts.Parent2, "parent2", DefaultParent, "Genotype of parent 2: exactly two allele characters, e.g. Aa, AA or aa.")
	flag.IntVar(&opts.Offspring, "offspring", DefaultOffspring, fmt.Sprintf("Number of offspring to simulate (%d-%d).", MinOffspring, MaxOffspring))
	flag.Int64Var(&opts.Seed, "seed", 0, "(Optional) Random seed. If not set, a random seed is drawn and logged so the run can be repeated.")
	flag.IntVar(&opts.Workers, "workers", 1, "(Optional) Number of goroutines to spread the offspring over. Results depend on seed and worker count.")
	flag.IntVar(&opts.Replicates, "replicates", 0, "(Optional) If above 1, repeat the cross this many times and summarize the spread of each genotype's percentage.")
	flag.StringVar(&opts.Chart, "chart", "", "(Optional) Path to write a bar chart to. The extension (.png or .svg) picks the format.")
	flag.StringVar(&opts.Table, "table", "", "(Optional) Path to write a tab-delimited table of the results to. Use - for stdout.")
	flag.BoolVar(&opts.Bars, "bars", false, "(Optional) Print a bar chart to stdout.")
	flag.IntVar(&opts.BarWidth, "bar-width", report.DefaultBarWidth, "(Optional) Width of the longest bar printed by --bars.")
	flag.BoolVar(&opts.Stats, "stats", false, "(Optional) Compare the offspring with the Punnett square expectation (chi-square) and test them for Hardy-Weinberg equilibrium.")
	flag.StringVar(&opts.Batch, "batch", "", "(Optional) Tab- or comma-delimited file, optionally gzip/zip/bzip2/xz/zlib compressed, with a header and columns parent1, parent2, offspring, seed. Every row is simulated and the results are printed as a table.")
	flag.StringVar(&configPath, "config", "", "(Optional) JSON file with any of the above settings. Flags given on the command line take precedence.")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		compileinfo.Fprint(os.Stdout)
		return
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	opts.SeedSet = explicit["seed"]

	if configPath != "" {
		cfg, err := ParseJSONConfigFromPath(configPath)
		if err != nil {
			log.Fatalln(err)
		}
		cfg.apply(&opts, explicit)
	}

	if !opts.SeedSet {
		seed, err := cross.NewSeed()
		if err != nil {
			log.Fatalln(err)
		}
		opts.Seed = seed
		log.Println("Using seed", opts.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if opts.Batch != "" {
		err = runBatch(ctx, opts, os.Stdout)
	} else {
		err = run(ctx, opts, os.Stdout)
	}

	if errors.Is(err, genotype.ErrInvalidGenotypeLength) {
		log.Println(err)
		fmt.Fprintln(os.Stderr, genotype.InvalidGenotypesMessage)
		os.Exit(1)
	}
	if errors.Is(err, ErrOffspringOutOfRange) {
		log.Println(err)
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalln(err)
	}
}
