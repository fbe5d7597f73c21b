package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"mallorn/internal"
)

var markExifToolFlag bool

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Watermark and compress every .jpg in the current directory",
	Long: `Mark overlays the built-in watermark on the bottom-right corner of every
.jpg in the current directory and writes a compressed copy into the build
directory under the same name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := internal.LoadConfig()
		if err != nil {
			return err
		}
		useExifTool := conf.UseExifTool || markExifToolFlag

		logger, err := internal.NewLogger("mallorn.log")
		if err != nil {
			return err
		}
		defer logger.Close()

		watermark, err := internal.LoadWatermark()
		if err != nil {
			// The watermark ships inside the binary; failing to decode it
			// means the build itself is broken.
			panic(fmt.Sprintf("embedded watermark is unreadable: %v", err))
		}

		if err := os.MkdirAll(conf.BuildDir, 0755); err != nil {
			return internal.IOError(conf.BuildDir, err)
		}

		files, err := internal.ScanImages(".")
		if err != nil {
			return err
		}
		fmt.Printf("Found %d images\n", len(files))

		session, err := internal.NewMarkSession(conf.BuildDir)
		if err != nil {
			return err
		}
		defer session.Close()
		session.LogStart(len(files))

		for _, file := range files {
			img, err := internal.OpenImage(file)
			if err != nil {
				// An unreadable source image is a precondition violation.
				panic(fmt.Sprintf("failed to open %s: %v", file, err))
			}

			dest := filepath.Join(conf.BuildDir, file)
			stamped := internal.Stamp(img, watermark)
			if err := internal.SaveJPEG(stamped, dest, conf.JPEGQuality); err != nil {
				// Best effort: record the failure and keep going.
				logger.Log("save failed for %s: %v", dest, err)
				session.LogSaveError(file, err)
				continue
			}

			taken, _ := internal.CaptureDate(file, useExifTool)
			session.LogMarked(file, dest, img.Bounds().Dx(), img.Bounds().Dy(), taken)
			logger.Log("marked %s -> %s", file, dest)
		}

		session.LogEnd()
		stats := session.Stats()
		fmt.Printf("Marked %d images into %s (%d save errors)\n",
			stats.Marked, conf.BuildDir, stats.SaveErrors)
		return nil
	},
}

func init() {
	markCmd.Flags().BoolVar(&markExifToolFlag, "exiftool", false, "Use the exiftool binary to resolve capture dates")

	rootCmd.AddCommand(markCmd)
}
