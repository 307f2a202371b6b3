package cmd

import (
	"os"

	"github.com/apod-cli/apod/color"
	"github.com/apod-cli/apod/icon"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolP("open", "o", false, "Open the picture in the image viewer, or the video in the browser")
	todayCmd.Flags().BoolP("json", "j", false, "Print the record as JSON")

	todayCmd.SetOut(os.Stdout)
}

// todayCmd fetches the picture of the day, falling back to the cache when offline.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Fetch and show today's picture",
	Run: func(cmd *cobra.Command, args []string) {
		lib := newLibrary(cmd)
		picture, err := lib.Today(cmd.Context())
		handleErr(err)

		if picture.Fallback {
			log.Warn(picture.Err)
			cmd.PrintErrf(
				"%s %s\n",
				style.Fg(color.Yellow)(icon.Get(icon.Cached)),
				style.Fg(color.Yellow)("offline, showing a cached picture"),
			)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJson(cmd, picture.Entry))
		} else {
			printEntry(cmd, picture.Entry, picture.Path)
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(openEntry(picture.Entry, picture.Path))
		}
	},
}
