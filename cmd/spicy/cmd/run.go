package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reclipse/spicy/internal/compilation"
	"github.com/reclipse/spicy/internal/diagnostics"
	"github.com/reclipse/spicy/internal/interp"
)

var (
	checkOnly bool
	emitMode  string
	output    string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Compile and execute a Spy program",
	Long: `Run a Spy script through the full pipeline (lex, parse, link, check) and
execute it if no diagnostic reported an error.

Examples:
  spicy run shapes.spc
  spicy run --check-only shapes.spc
  spicy check shapes.spc`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&checkOnly, "check-only", false, "stop after the Modifier Checker; do not execute")
	runCmd.Flags().StringVar(&emitMode, "emit", "run", "what to emit: run|check")
	runCmd.Flags().StringVarP(&output, "output", "o", "", "write diagnostics/output to this file instead of stdout/stderr")
}

func runFile(_ *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		exitCode = 2
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if declared, ok := declaredGrammarVersion(string(source)); ok && !grammarCompatible(declared) {
		exitCode = 1
		return fmt.Errorf("%s declares grammar version %s, older than the minimum supported %s", path, declared, minGrammarVersion)
	}

	trace("compiling %s", path)
	c := compilation.Compile(path, string(source))

	out := os.Stdout
	errOut := os.Stderr
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			exitCode = 2
			return fmt.Errorf("opening %s: %w", output, err)
		}
		defer f.Close()
		out, errOut = f, f
	}

	if len(c.Bag.Items()) > 0 {
		fmt.Fprint(errOut, diagnostics.FormatAll(c.Bag.Items(), path, c.Source, verbose))
		if c.Bag.Overflowed() {
			fmt.Fprintln(errOut, "note: diagnostic limit reached; some diagnostics were dropped")
		}
	}
	if c.Bag.HasErrors() {
		exitCode = 1
		return nil
	}

	if checkOnly || emitMode == "check" {
		return nil
	}

	trace("executing %s", path)
	runtime := interp.New(c.Graph, c.Functions)
	runtime.Out = out
	if exc := runtime.Run(c.Program); exc != nil {
		fmt.Fprintf(errOut, "uncaught exception: %s\n", exc.String())
		exitCode = 3
	}
	return nil
}
