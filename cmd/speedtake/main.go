// Command speedtake is the headless front-end: it queues the given videos
// and URLs, runs one extraction batch, and reports the result on stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zenchantlive/SpeedTake/internal/extract"
	"github.com/zenchantlive/SpeedTake/internal/model"
	"github.com/zenchantlive/SpeedTake/internal/platform"
	"github.com/zenchantlive/SpeedTake/internal/resolve"
	"github.com/zenchantlive/SpeedTake/internal/transcode"
)

var (
	formatFlag string
	outputFlag string
	folderFlag string
)

var rootCmd = &cobra.Command{
	Use:   "speedtake [videos or URLs...]",
	Short: "Extract audio tracks from video files and video URLs",
	Long: `SpeedTake extracts the audio track of local video files or remote
video URLs into mp3, wav, flac, or aac using ffmpeg.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", model.FormatMP3.String(), "output format: mp3, wav, flac, or aac")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output folder (default: next to each source)")
	rootCmd.Flags().StringVarP(&folderFlag, "folder", "d", "", "queue all videos found under this folder")
}

func run(cmd *cobra.Command, args []string) error {
	controller := extract.NewService(resolve.NewService(), transcode.NewService())

	if err := controller.SetOutputFormat(formatFlag); err != nil {
		return err
	}
	if outputFlag != "" {
		if err := platform.CreateDirectoryIfNotExists(outputFlag); err != nil {
			return fmt.Errorf("cannot create output folder: %w", err)
		}
		controller.SetOutputFolder(outputFlag)
	}

	if folderFlag != "" {
		added, discovered, err := controller.AddFolder(folderFlag)
		if err != nil {
			return err
		}
		fmt.Printf("Queued %d of %d videos from %s\n", len(added), discovered, folderFlag)
	}

	for _, arg := range args {
		if strings.Contains(arg, "://") {
			if _, err := controller.AddRemoteRef(arg); err != nil {
				return err
			}
			continue
		}
		if _, err := controller.AddLocalFiles(arg); err != nil {
			return err
		}
	}

	result, err := controller.RunBatch(context.Background(), extract.Callbacks{
		Status: func(index, total int, name string) {
			fmt.Printf("[%d/%d] %s\n", index, total, name)
		},
		Error: func(name string, err error) {
			fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Done: %d/%d extracted.\n", result.SuccessCount, result.TotalFiles)
	if result.Outcome() == model.OutcomeTotalFailure {
		return fmt.Errorf("no files could be extracted")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
