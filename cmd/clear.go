package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/apod-cli/apod/icon"
	"github.com/apod-cli/apod/internal/cache"
	"github.com/apod-cli/apod/util"
	"github.com/apod-cli/apod/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a set of filesystem resources eligible for cleanup.
type clearTarget struct {
	name      string
	argLong   string
	argShort  mo.Option[string]
	locations func() []string
}

func paths(fns ...func() string) func() []string {
	return func() []string {
		return lo.Map(fns, func(fn func() string, _ int) string { return fn() })
	}
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), paths(where.Cache)},
	{"downloaded pictures", "images", mo.Some("i"), paths(where.Images)},
	{"cached records", "records", mo.Some("r"), paths(where.Today, where.Archive, where.Index)},
	{"queries history", "queries", mo.Some("q"), paths(where.Queries)},
	{"partial downloads", "temp", mo.Some("t"), cache.StalePartials},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if !doClear(target.argLong) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			for _, path := range target.locations() {
				if err := util.Delete(path); err != nil && !errors.Is(err, os.ErrNotExist) {
					e()
					handleErr(err)
				}
			}
			e()
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
