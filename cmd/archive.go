package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/apod-cli/apod/archive"
	"github.com/apod-cli/apod/color"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.Flags().StringP("search", "q", "", "Only list pages whose title contains this term")
	archiveCmd.Flags().IntP("count", "n", 0, "List at most this many pages")
	archiveCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")

	archiveCmd.SetOut(os.Stdout)
}

// archiveCmd lists every page of the HTML archive. It needs no API key.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "List every published picture from the HTML archive",
	Run: func(cmd *cobra.Command, args []string) {
		scraper, err := archive.New(viper.GetString(key.ArchiveBaseURL), nil)
		handleErr(err)

		links, err := scraper.CachedIndex(cmd.Context())
		handleErr(err)

		if term := strings.ToLower(lo.Must(cmd.Flags().GetString("search"))); term != "" {
			links = lo.Filter(links, func(l *archive.Link, _ int) bool {
				return strings.Contains(strings.ToLower(l.Title), term)
			})
		}

		if n := lo.Must(cmd.Flags().GetInt("count")); n > 0 {
			links = lo.Slice(links, 0, n)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if links == nil {
				links = []*archive.Link{}
			}
			handleErr(encoder.Encode(links))
			return
		}

		for _, l := range links {
			cmd.Printf(
				"%s  %s  %s\n",
				l.Date,
				l.Title,
				style.Fg(color.Blue)(l.Page),
			)
		}
	},
}
