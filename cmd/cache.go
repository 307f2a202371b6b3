package cmd

import (
	"fmt"
	"time"

	"github.com/apod-cli/apod/color"
	"github.com/apod-cli/apod/icon"
	"github.com/apod-cli/apod/internal/cache"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/style"
	"github.com/apod-cli/apod/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(cacheCmd)
}

// cacheCmd groups the image cache commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage downloaded pictures",
}

func init() {
	cacheCmd.AddCommand(cachePruneCmd)
	cachePruneCmd.Flags().Int("ttl", 0, "Remove pictures older than this many hours (default cache.ttl_hours)")
	cachePruneCmd.Flags().Int("max-size", 0, "Keep the cache under this many megabytes (default cache.max_size_mb)")
}

// cachePruneCmd runs the garbage collection that otherwise happens in the background on start.
var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old pictures and enforce the cache size limit",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ttl     = viper.GetInt(key.CacheTTLHours)
			maxSize = viper.GetInt(key.CacheMaxSize)
		)

		if cmd.Flags().Changed("ttl") {
			ttl = lo.Must(cmd.Flags().GetInt("ttl"))
		}
		if cmd.Flags().Changed("max-size") {
			maxSize = lo.Must(cmd.Flags().GetInt("max-size"))
		}

		e := util.PrintErasable(fmt.Sprintf("%s Pruning cache...", icon.Get(icon.Progress)))
		removed, freed, err := cache.Prune(time.Duration(ttl)*time.Hour, int64(maxSize)<<20)
		e()
		handleErr(err)

		fmt.Printf(
			"%s removed %s, freed %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(removed, "file", "files"),
			util.Bytes(freed),
		)
	},
}
