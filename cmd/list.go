package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/inline"
	"github.com/apod-cli/apod/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("search", "q", "", "Only list pictures whose title contains this term")
	listCmd.Flags().String("sort", "", "Order of the list: default, ascending or descending")
	listCmd.Flags().IntP("count", "n", 0, "List at most this many pictures")
	listCmd.Flags().StringP("pick", "p", "", "Select a single picture: first, last, index:N or date:YYYY-MM-DD")
	listCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	listCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	listCmd.Flags().Bool("schema", false, "Print the JSON schema of the output and exit")

	lo.Must0(listCmd.RegisterFlagCompletionFunc("search", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(listCmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return apod.SortOrders(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// listCmd prints the archive list in a scriptable form.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archive pictures in a scriptable form",
	Long: `List archive pictures without the interactive interface.

Each line holds the date, the media kind, the title and the URL to open.

Pickers:
  first - first picture in the list
  last - last picture in the list
  index:N or N - picture at index N (starting from 0)
  date:YYYY-MM-DD - picture published on that day`,
	Example: "  apod list --search nebula --sort ascending\n  apod list --pick first --json",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(inline.Schema()))
			return
		}

		sortOrder := mo.None[apod.SortOrder]()
		if s := lo.Must(cmd.Flags().GetString("sort")); s != "" {
			sortOrder = mo.Some(apod.ParseSortOrder(s))
		}

		picker := mo.None[inline.Picker]()
		if p := lo.Must(cmd.Flags().GetString("pick")); p != "" {
			fn, err := inline.ParsePicker(p)
			handleErr(err)
			picker = mo.Some(fn)
		}

		lib := newLibrary(cmd)
		output := lo.Must(cmd.Flags().GetString("output"))

		handleErr(withOutput(output, func(w io.Writer) error {
			return inline.Run(cmd.Context(), lib, &inline.Options{
				Out:    w,
				Json:   lo.Must(cmd.Flags().GetBool("json")),
				Search: lo.Must(cmd.Flags().GetString("search")),
				Sort:   sortOrder,
				Count:  lo.Must(cmd.Flags().GetInt("count")),
				Picker: picker,
			})
		}))
	},
}

// withOutput runs fn against stdout, or against the file at path when it is set.
// The file is closed before returning, whatever fn reports.
func withOutput(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}

	file, err := filesystem.API().Create(path)
	if err != nil {
		return err
	}

	err = fn(file)
	return errors.Join(err, file.Close())
}
