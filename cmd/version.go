package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "(devel)"
	commit  = ""
	date    = ""
)

var features = []string{
	"Frontend / backend / fullstack interview tracks",
	"LLM interviewer with real-time feedback per topic",
	"Final evaluation and plain-text transcript export",
	"Practice statistics dashboard (intervu stats)",
}

var changelog = []struct {
	version string
	note    string
}{
	{"1.0.0", "First public release"},
	{"1.1.0", "Internal restructuring, no behavior change"},
	{"1.2.0", "Practice statistics dashboard"},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and release notes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("intervu", version)
		if commit != "" {
			fmt.Println("commit:", commit)
		}
		if date != "" {
			fmt.Println("built: ", date)
		}

		fmt.Println()
		fmt.Println("Features:")
		for _, f := range features {
			fmt.Println("  -", f)
		}

		fmt.Println()
		fmt.Println("Changelog:")
		for _, c := range changelog {
			fmt.Printf("  %s  %s\n", c.version, c.note)
		}
	},
}
