// Package cmd implements the spicy CLI's cobra commands: a root/run/version
// split with a persistent --verbose flag and a package-level exit code set
// by each subcommand, covering Spy's run/check/version surface (§6).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "spicy",
	Short: "Spy language interpreter",
	Long: `spicy runs Spy programs: Python-surfaced scripts with C++/Java-style
class modifiers (interface, abstract class, final class, extends,
implements, abstract/final/static members).

Set SPICY_TRACE=1 in the environment to print a trace line to stderr when
compilation starts and when execution starts.`,
	Version: Version,
}

// Execute runs the root command and returns its exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if exitCode == 0 {
			exitCode = 1
		}
		return exitCode
	}
	return exitCode
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output (note frames)")
}

// exitCode is set by run/check before returning, since cobra's RunE only
// distinguishes error/no-error, not §6's 0/1/2/3 exit-code taxonomy.
var exitCode int

func traceEnabled() bool {
	return os.Getenv("SPICY_TRACE") == "1"
}

func trace(format string, args ...any) {
	if traceEnabled() {
		fmt.Fprintf(os.Stderr, "[trace] "+format+"\n", args...)
	}
}
