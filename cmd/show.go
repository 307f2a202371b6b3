package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/color"
	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/icon"
	"github.com/apod-cli/apod/inline"
	"github.com/apod-cli/apod/open"
	"github.com/apod-cli/apod/style"
	"github.com/apod-cli/apod/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("open", "o", false, "Open the picture in the image viewer, or the video in the browser")
	showCmd.Flags().BoolP("download", "d", false, "Download the picture into the cache and print its path")
	showCmd.Flags().BoolP("reload", "r", false, "Download the picture again even when it is cached")
	showCmd.Flags().BoolP("json", "j", false, "Print the record as JSON")

	showCmd.SetOut(os.Stdout)
}

// showCmd prints the record of a given day.
var showCmd = &cobra.Command{
	Use:     "show <date>",
	Short:   "Show the picture published on a given day",
	Example: "  apod show 2004-12-25\n  apod show yesterday --open",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day, err := parseDay(args[0], time.Now())
		handleErr(err)

		lib := newLibrary(cmd)
		entry, err := lib.Day(cmd.Context(), day)
		handleErr(err)

		var (
			reload   = lo.Must(cmd.Flags().GetBool("reload"))
			download = lo.Must(cmd.Flags().GetBool("download")) || reload
			doOpen   = lo.Must(cmd.Flags().GetBool("open"))
			path     string
		)

		if entry.IsPicture() && (download || doOpen) {
			path, err = lib.Image(cmd.Context(), entry, reload)
			handleErr(err)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJson(cmd, entry))
		} else {
			printEntry(cmd, entry, path)
		}

		if doOpen {
			handleErr(openEntry(entry, path))
		}
	},
}

// parseDay accepts YYYY-MM-DD, today and yesterday.
func parseDay(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	day, err := time.Parse(constant.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return day, nil
}

func printJson(cmd *cobra.Command, entry *apod.Entry) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(entry)
}

func printEntry(cmd *cobra.Command, entry *apod.Entry, path string) {
	var (
		title = style.New().Bold(true).Foreground(color.HiPurple).Render
		faint = style.Faint
		width = 80
	)

	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		width = util.Min(w, 100)
	}

	cmd.Printf("%s %s\n", icon.ForKind(entry.Kind()), title(entry.DisplayTitle()))
	cmd.Println(faint(entry.DisplayDate()))

	if entry.Copyright != "" {
		cmd.Println(faint("© " + strings.TrimSpace(entry.Copyright)))
	}

	if entry.Explanation != "" {
		cmd.Println()
		cmd.Println(wordwrap.String(entry.Explanation, width))
	}

	cmd.Println()
	if u := inline.URL(entry); u != "" {
		cmd.Printf("%s %s\n", icon.Get(icon.Link), style.Fg(color.Blue)(u))
	}
	if path != "" {
		cmd.Printf("%s %s\n", icon.Get(icon.Image), path)
	}
}

// openEntry opens a downloaded picture in the viewer, anything else in the browser.
func openEntry(entry *apod.Entry, path string) error {
	if path != "" {
		return open.Image(path)
	}

	u := inline.URL(entry)
	if u == "" {
		return fmt.Errorf("%s has nothing to open", entry.DisplayDate())
	}
	return open.URL(u)
}
