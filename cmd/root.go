// Package cmd implements the command-line interface for apod.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apod-cli/apod/color"
	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/icon"
	"github.com/apod-cli/apod/internal/cache"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/library"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/style"
	"github.com/apod-cli/apod/tui"
	"github.com/apod-cli/apod/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("keyless", false, "Scrape the HTML archive even when an API key is configured")

	rootCmd.Flags().BoolP("skip-splash", "s", false, "Open the archive list without showing today's picture first")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for apod.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse NASA's Astronomy Picture of the Day from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiBlue).Render("    - Browse NASA's Astronomy Picture of the Day from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		lib := newLibrary(cmd)

		options := tui.Options{
			Library:    lib,
			SkipSplash: lo.Must(cmd.Flags().GetBool("skip-splash")),
		}

		err := tui.Run(cmd.Context(), &options)
		if cleanErr := cache.CleanTransient(); cleanErr != nil {
			log.Warn(cleanErr)
		}
		handleErr(err)
	},
}

// newLibrary builds the library shared by every command, exiting on failure.
func newLibrary(cmd *cobra.Command) *library.Library {
	if lo.Must(cmd.Flags().GetBool("keyless")) {
		lib, err := library.NewKeyless()
		handleErr(err)
		return lib
	}

	lib, err := library.New()
	handleErr(err)
	return lib
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
