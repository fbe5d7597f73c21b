package cmd

import (
	"bufio"
	"os"
	"time"

	"github.com/spf13/cobra"
	"mallorn/internal"
)

var postCmd = &cobra.Command{
	Use:   "post <date>",
	Short: "Create a dated post stub for each .jpg in the current directory",
	Long: `Post writes one markdown stub per image, prompting for alt text and
scheduling the posts on the Mon/Wed/Fri cadence starting from the given
date (YYYY-MM-DD, itself a Monday, Wednesday or Friday).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
		if err != nil {
			return internal.InvalidInput("invalid date %q, expected YYYY-MM-DD", args[0])
		}

		logger, err := internal.NewLogger("mallorn.log")
		if err != nil {
			return err
		}
		defer logger.Close()

		runner := &internal.PostRunner{
			Dir:    ".",
			In:     bufio.NewScanner(os.Stdin),
			Out:    os.Stdout,
			Stop:   internal.LoadStopWords(),
			Logger: logger,
		}
		return runner.Run(start)
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
}
