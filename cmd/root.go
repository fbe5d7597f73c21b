package cmd

import (
	"github.com/spf13/cobra"
)

// Version is replaced from the embedded VERSION file at startup.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "mallorn",
	Short: "Mallorn photo blog helper",
	Long: `Mallorn prepares photo posts for a static blog: mark watermarks and
compresses the images in the current directory, post turns them into dated
markdown stubs on a Mon/Wed/Fri schedule.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// ApplyVersion pushes Version into the Cobra command; called again after the
// embedded VERSION overrides the default.
func ApplyVersion() {
	rootCmd.Version = Version
}

func init() {
	ApplyVersion()
}
