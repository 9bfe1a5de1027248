package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jkeur/starswap/instance"
	"github.com/jkeur/starswap/star"
	"github.com/jkeur/starswap/starlog"
)

var styleExpensiveSwaps = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

// runREPL drives the single-character command loop: one key per line, read
// from stdin until 'c' closes the solver.
func runREPL(cmd *cobra.Command, p *star.Problem, logger *starlog.Logger) error {
	out := cmd.OutOrStdout()
	r := bufio.NewReader(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "> ")
		line, err := r.ReadString('\n')
		if err != nil {
			return nil // EOF on piped input ends the loop like 'c' would
		}
		key := firstNonSpace(line)
		if key == 0 {
			continue
		}

		switch key {
		case 'c':
			return nil

		case 'h':
			printHelp(out)

		case 'e':
			p.Reset()
			start := time.Now()
			a, err := p.RouteSimple()
			if err != nil {
				logger.Failure(err, p.MoveMatrix())
				return err
			}
			elapsed := time.Since(start)
			logger.Route(a, p.Ns, p.Nsb)
			fmt.Fprintf(out, "routeSimple\nd\t%d\n#s(a)\t%d\n#s(b)\t%d\n#s\t%d\ntime\t%d ms\n",
				p.Depth, p.Ns-p.Nsb, p.Nsb, p.Ns, elapsed.Milliseconds())

		case 'm':
			start := time.Now()
			res, err := p.Run()
			if err != nil {
				logger.Failure(err, p.MoveMatrix())
				return err
			}
			elapsed := time.Since(start)
			logger.Decompose(res.Beta)
			logger.Route(res.A, res.Ns, res.Nsb)
			printColorizedResult(out, res, elapsed)
			if flagNoColor {
				fmt.Fprintln(out, starlog.PlainMatrixString(p.MoveMatrix()))
			} else {
				fmt.Fprintln(out, starlog.MatrixString(p.MoveMatrix()))
			}

		case 's':
			if err := saveInstance(p, defaultString(flagFile, "p")); err != nil {
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			fmt.Fprintf(out, "> problem saved as %q\n", defaultString(flagFile, "p"))

		case 'l':
			path := defaultString(flagFile, "p4")
			loaded, err := loadInstance(path, out, logger)
			if err != nil {
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			p = loaded
			fmt.Fprintf(out, "> problem loaded from %q\n", path)

		default:
			fmt.Fprintf(out, "! unrecognized key %q, press h for help\n", string(key))
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, "Press one of the following keys\n"+
		"c: Close the solver\n"+
		"e: Use the trivial solving algorithm\n"+
		"h: Show help information\n"+
		"m: Use the decomposition-guided algorithm\n"+
		"s: Save the problem\n"+
		"l: Load a problem\n")
}

func printColorizedResult(out io.Writer, res star.Result, elapsed time.Duration) {
	nsb := fmt.Sprintf("%d", res.Nsb)
	if !flagNoColor {
		nsb = styleExpensiveSwaps.Render(nsb)
	}
	fmt.Fprintf(out, "routeSwaps\nd\t%d\n#s(a)\t%d\n#s(b)\t%s\n#s\t%d\ntime\t%d ms\n",
		res.Depth, res.Ns-res.Nsb, nsb, res.Ns, elapsed.Milliseconds())
}

func saveInstance(p *star.Problem, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return instance.Save(f, &instance.Instance{K: p.K, M: p.M, X: p.X})
}

func loadInstance(path string, out io.Writer, logger *starlog.Logger) (*star.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := instance.Load(f)
	if err != nil {
		return nil, err
	}

	n := inst.K * (inst.M + 1)
	y := make([]int, n)
	for i := range y {
		y[i] = i
	}
	return star.NewProblem(inst.K, inst.M, inst.X, y, observerOpts(out, logger, n)...)
}

func firstNonSpace(s string) byte {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' && s[i] != '\n' && s[i] != '\r' {
			return s[i]
		}
	}
	return 0
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
