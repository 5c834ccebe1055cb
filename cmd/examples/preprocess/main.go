// Command preprocess loads a CSV or XLSX file, runs a YAML recipe over it
// and writes or previews the result.
//
//	preprocess employees.csv --recipe recipe.yaml --output clean.csv --plot idade
//
// Logging and missing markers come from PREP_LOG_LEVEL, PREP_LOG_FORMAT and
// PREP_MISSING_MARKERS.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/data"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/loader"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/logger"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/pipeline"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/preprocessing"
)

type options struct {
	recipe    string
	output    string
	sheet     string
	plot      string
	plotFile  string
	bins      int
	preview   int
	describe  bool
	testRatio float64
	folds     int
	shuffle   bool
	seed      int64
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "preprocess input",
		Short:         "Clean, scale and encode a tabular file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger.Init(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return run(cmd.OutOrStdout(), args[0], opts, cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.recipe, "recipe", "", "YAML recipe with the steps to run")
	f.StringVar(&opts.output, "output", "", "path to write the processed CSV")
	f.StringVar(&opts.sheet, "sheet", "", "sheet to read from an .xlsx input (default: first)")
	f.StringVar(&opts.plot, "plot", "", "numeric column to plot as a histogram after processing")
	f.StringVar(&opts.plotFile, "plot-file", "", "histogram image path (default: <column>_hist.png)")
	f.IntVar(&opts.bins, "bins", 10, "histogram bins")
	f.IntVar(&opts.preview, "preview", 5, "rows to print; 0 disables the preview")
	f.BoolVar(&opts.describe, "describe", false, "print summary statistics of numeric columns")
	f.Float64Var(&opts.testRatio, "test-ratio", 0, "hold out this fraction of rows into <output>.test.csv")
	f.IntVar(&opts.folds, "folds", 0, "write k train/test pairs as <output>.fold<i>.{train,test}.csv")
	f.BoolVar(&opts.shuffle, "shuffle", false, "shuffle rows before writing the output")
	f.Int64Var(&opts.seed, "seed", 42, "seed for shuffling and splitting")
	return cmd
}

func run(out io.Writer, input string, opts options, cfg Config) error {
	ds, err := load(input, opts.sheet, data.Options{MissingMarkers: cfg.MissingMarkers})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %s: %d rows, %d columns\n", input, ds.Len(), ds.Width())

	p := preprocessing.New(ds)
	if opts.recipe != "" {
		r, err := pipeline.LoadRecipe(opts.recipe)
		if err != nil {
			return err
		}
		pl, err := r.Pipeline()
		if err != nil {
			return err
		}
		if err := pl.Run(p); err != nil {
			return err
		}
		fmt.Fprintf(out, "Applied %d steps: %s\n", len(pl.Steps()), strings.Join(pl.Steps(), ", "))
	}
	ds = p.Dataset()

	if opts.preview > 0 {
		preview(out, ds, opts.preview)
	}
	if opts.describe {
		describe(out, p)
	}

	if opts.output != "" {
		if err := save(out, ds, opts); err != nil {
			return err
		}
	}

	if opts.plot != "" {
		file := opts.plotFile
		if file == "" {
			file = opts.plot + "_hist.png"
		}
		if err := plotHistogram(ds, opts.plot, opts.bins, file); err != nil {
			return err
		}
		fmt.Fprintln(out, "Histogram saved to:", file)
	}
	return nil
}

func load(path, sheet string, opts data.Options) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return data.LoadXLSX(path, sheet, opts)
	default:
		return data.LoadCSV(path, opts)
	}
}

func save(out io.Writer, ds *dataset.Dataset, opts options) error {
	if opts.testRatio > 0 && opts.folds > 0 {
		return errors.New("--test-ratio and --folds are mutually exclusive")
	}
	rng := rand.New(rand.NewSource(opts.seed))
	base := strings.TrimSuffix(opts.output, filepath.Ext(opts.output))

	switch {
	case opts.folds > 0:
		folds, err := loader.KFoldSplit(ds.Len(), opts.folds, rng)
		if err != nil {
			return err
		}
		for i := range folds {
			train, test := loader.Fold(ds, folds, i)
			trainPath := fmt.Sprintf("%s.fold%d.train.csv", base, i+1)
			testPath := fmt.Sprintf("%s.fold%d.test.csv", base, i+1)
			if err := data.SaveCSV(trainPath, train); err != nil {
				return err
			}
			if err := data.SaveCSV(testPath, test); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "Processed data saved to %d folds: %s.fold<i>.{train,test}.csv\n", len(folds), base)
		return nil

	case opts.testRatio > 0:
		train, test, err := loader.TrainTestSplit(ds, opts.testRatio, rng)
		if err != nil {
			return err
		}
		testPath := base + ".test.csv"
		if err := data.SaveCSV(opts.output, train); err != nil {
			return err
		}
		if err := data.SaveCSV(testPath, test); err != nil {
			return err
		}
		fmt.Fprintf(out, "Processed data saved to: %s (%d rows), %s (%d rows)\n", opts.output, train.Len(), testPath, test.Len())
		return nil
	}

	if opts.shuffle {
		ds = loader.Shuffle(ds, rng)
	}
	if err := data.SaveCSV(opts.output, ds); err != nil {
		return err
	}
	fmt.Fprintln(out, "Processed data saved to:", opts.output)
	return nil
}

// preview prints the first n rows with headers.
func preview(out io.Writer, ds *dataset.Dataset, n int) {
	n = min(n, ds.Len())
	fmt.Fprintln(out, "\nPreview of processed data:")
	for _, h := range ds.Names() {
		fmt.Fprintf(out, "%-15s", h)
	}
	fmt.Fprintln(out)
	for i := range n {
		for _, c := range ds.Row(i) {
			if v, ok := c.Float(); ok {
				fmt.Fprintf(out, "%-15.6g", v)
			} else {
				fmt.Fprintf(out, "%-15s", c.Label())
			}
		}
		fmt.Fprintln(out)
	}
}

func describe(out io.Writer, p *preprocessing.Preprocessor) {
	st := p.Statistics()
	fmt.Fprintf(out, "\n%-15s%-15s%-15s%-15s\n", "column", "mean", "median", "std")
	for _, name := range p.Dataset().Schema().Numeric() {
		mean, err := st.Mean(name)
		if err != nil {
			fmt.Fprintf(out, "%-15s%-15s%-15s%-15s\n", name, "-", "-", "-")
			continue
		}
		median, _ := st.Median(name)
		std, _ := st.StdDev(name)
		fmt.Fprintf(out, "%-15s%-15.6g%-15.6g%-15.6g\n", name, mean, median, std)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
