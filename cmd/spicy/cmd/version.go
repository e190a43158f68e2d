package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// minGrammarVersion is the oldest Spy grammar version this binary still
// parses correctly. It is compared with semver rather than hand-rolled
// dotted-string parsing, matching how a module-aware tool validates a
// version constraint at startup.
const minGrammarVersion = "v1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spicy version %s\n", Version)
		fmt.Printf("Git commit: %s\n", GitCommit)
		fmt.Printf("Build date: %s\n", BuildDate)
		fmt.Printf("Minimum supported grammar version: %s\n", minGrammarVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// grammarCompatible reports whether declared (a "vX.Y.Z"-shaped grammar
// version a .spc file's first comment line may declare) is at least
// minGrammarVersion. A declared string that is not valid semver is treated
// as compatible.
func grammarCompatible(declared string) bool {
	if !semver.IsValid(declared) {
		return true
	}
	return semver.Compare(declared, minGrammarVersion) >= 0
}

// declaredGrammarVersion looks for a leading `# version: vX.Y.Z` pragma
// comment on a script's first line.
func declaredGrammarVersion(source string) (string, bool) {
	firstLine := source
	if idx := strings.IndexByte(source, '\n'); idx >= 0 {
		firstLine = source[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)
	const prefix = "# version:"
	if !strings.HasPrefix(firstLine, prefix) {
		return "", false
	}
	return strings.TrimSpace(firstLine[len(prefix):]), true
}
