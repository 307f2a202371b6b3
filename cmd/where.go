package cmd

import (
	"encoding/json"
	"os"

	"github.com/apod-cli/apod/color"
	"github.com/apod-cli/apod/config"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/style"
	"github.com/apod-cli/apod/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// whereTarget is a resource location the where command can print.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Config file", config.Path, "config-file", mo.Some("f"), false},
	{"Pictures", where.Images, "images", mo.Some("i"), false},
	{"Key file", where.KeyFile, "key", mo.Some("k"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Queries", where.Queries, "queries", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if n.argShort.IsPresent() {
			whereCmd.Flags().BoolP(n.argLong, n.argShort.MustGet(), false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}

		if n.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(n.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.Flags().BoolP("json", "j", false, "Print every path as a JSON object")

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints where apod keeps its files.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths used by apod",
	Run: func(cmd *cobra.Command, args []string) {
		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(wherePaths, func(t *whereTarget) (string, string) {
				return t.argLong, t.where()
			})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(paths))
			return
		}

		var (
			headerStyle = style.New().Bold(true).Foreground(color.HiPurple).Render
			visible     = lo.Reject(wherePaths, func(t *whereTarget, _ int) bool { return t.hidden })
		)

		for i, n := range visible {
			path := n.where()

			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			if exists, _ := filesystem.API().Exists(path); exists {
				cmd.Println(path)
			} else {
				cmd.Println(path + " " + style.Faint("(missing)"))
			}

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
