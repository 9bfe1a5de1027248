package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jkeur/starswap/instance"
	"github.com/jkeur/starswap/routerand"
	"github.com/jkeur/starswap/star"
	"github.com/jkeur/starswap/starlog"
)

var (
	flagK           int
	flagM           int
	flagFile        string
	flagSeed        int64
	flagNoColor     bool
	flagInteractive bool
	flagTrace       bool

	rootCmd = &cobra.Command{
		Use:   "starswap",
		Short: "Route swaps across a fully-connected star graph",
		Long: `starswap sorts an input permutation to a target permutation using
only centre-centre and centre-leaf swaps in a fully-connected star
graph of k centres and m leaves per centre.`,
		RunE: runRoot,
	}
)

func init() {
	rootCmd.Flags().IntVar(&flagK, "k", 4, "number of centres")
	rootCmd.Flags().IntVar(&flagM, "m", 3, "leaves per centre")
	rootCmd.Flags().StringVar(&flagFile, "file", "", "load a .fcs instance instead of generating one")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 1, "seed for the generated instance's initial shuffle")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output (auto-detected for non-tty otherwise)")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "drop into the e/m/s/l/h/c key loop instead of running once")
	rootCmd.Flags().BoolVar(&flagTrace, "trace", false, "print every swap as it is applied")
}

// buildProblem constructs the Problem for this run, either by loading a
// .fcs instance from --file or by shuffling a fresh identity instance of
// size k*(m+1) with --seed. Every stage boundary and accepted swap is
// recorded on logger; with --trace, each swap is additionally printed to
// out as a width-aligned "i-j" pair, expensive pairs highlighted.
func buildProblem(out io.Writer, logger *starlog.Logger) (*star.Problem, error) {
	var inst *instance.Instance

	if flagFile != "" {
		f, err := os.Open(flagFile)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", flagFile, err)
		}
		defer f.Close()

		inst, err = instance.Load(f)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", flagFile, err)
		}
	} else {
		n := flagK * (flagM + 1)
		x0 := make([]int, n)
		for i := range x0 {
			x0[i] = i
		}
		if err := routerand.ShuffleCentres(rand.New(rand.NewSource(flagSeed)), x0, flagK, flagM); err != nil {
			return nil, err
		}
		inst = &instance.Instance{K: flagK, M: flagM, X: x0}
	}

	n := inst.K * (inst.M + 1)
	y := make([]int, n)
	for i := range y {
		y[i] = i
	}

	return star.NewProblem(inst.K, inst.M, inst.X, y, observerOpts(out, logger, n)...)
}

// observerOpts wires the per-stage and per-swap log records, plus the
// --trace swap printer, for an instance of n nodes.
func observerOpts(out io.Writer, logger *starlog.Logger, n int) []star.Option {
	width := len(strconv.Itoa(n))
	return []star.Option{
		star.WithStageObserver(logger.Stage),
		star.WithSwapObserver(func(rec star.SwapRecord) {
			logger.Swap(rec)
			if !flagTrace {
				return
			}
			pair := fmt.Sprintf("%*d-%*d", width, rec.I+1, width, rec.J+1)
			if rec.CentreCentre && !flagNoColor {
				pair = styleExpensiveSwaps.Render(pair)
			}
			fmt.Fprintf(out, "%s ", pair)
		}),
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := starlog.New(nil)

	p, err := buildProblem(cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	if flagInteractive {
		return runREPL(cmd, p, logger)
	}

	res, err := p.Run()
	if err != nil {
		logger.Failure(err, p.MoveMatrix())
		return err
	}
	printResult(cmd, res)
	return nil
}

func printResult(cmd *cobra.Command, res star.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "beta\t%d\na\t%d\nd\t%d\n#s(a)\t%d\n#s(b)\t%d\n#s\t%d\n",
		res.Beta, res.A, res.Depth, res.Ns-res.Nsb, res.Nsb, res.Ns)
}
