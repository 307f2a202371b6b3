package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/apod-cli/apod/auth"
	"github.com/apod-cli/apod/color"
	"github.com/apod-cli/apod/icon"
	"github.com/apod-cli/apod/style"
	"github.com/apod-cli/apod/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

// keyCmd groups the API key commands.
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the NASA API key",
	Long: `Manage the NASA API key.

Keys are looked up in this order: the api.key config value, the system keyring, then the key file.
Get a free key at https://api.nasa.gov`,
}

func init() {
	keyCmd.AddCommand(keySetCmd)
}

// keySetCmd stores a key in the keyring, prompting for it when no argument is given.
var keySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the API key in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var value string

		if len(args) == 1 {
			value = args[0]
		} else {
			input := survey.Password{
				Message: "NASA API key:",
				Help:    "40 letters or digits, from https://api.nasa.gov",
			}
			handleErr(survey.AskOne(&input, &value, survey.WithValidator(func(ans any) error {
				if s, ok := ans.(string); ok && auth.Valid(strings.TrimSpace(s)) {
					return nil
				}
				return auth.ErrInvalidKey
			})))
		}

		source, err := auth.Save(value)
		handleErr(err)

		fmt.Printf(
			"%s saved key to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(string(source)),
		)
	},
}

func init() {
	keyCmd.AddCommand(keyGetCmd)
	keyGetCmd.Flags().BoolP("reveal", "r", false, "Print the whole key instead of a masked form")
	keyGetCmd.SetOut(os.Stdout)
}

// keyGetCmd prints the resolved key and where it was found.
var keyGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the API key in use and where it was found",
	Run: func(cmd *cobra.Command, args []string) {
		k, source, err := auth.Resolve()
		if errors.Is(err, auth.ErrNoKey) {
			handleErr(fmt.Errorf("%w, run \"apod key set\"", err))
		}
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("reveal")) {
			k = maskKey(k)
		}

		cmd.Printf("%s %s\n", k, style.Faint("("+string(source)+")"))
	},
}

// maskKey keeps the first and last four characters.
func maskKey(k string) string {
	if len(k) <= 8 {
		return strings.Repeat("*", len(k))
	}
	return k[:4] + strings.Repeat("*", len(k)-8) + k[len(k)-4:]
}

func init() {
	keyCmd.AddCommand(keyDeleteCmd)
}

// keyDeleteCmd removes the key from the keyring.
var keyDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the API key from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.Delete())
		fmt.Printf(
			"%s deleted key from keyring\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}

func init() {
	keyCmd.AddCommand(keyPathCmd)
	keyPathCmd.SetOut(os.Stdout)
}

// keyPathCmd prints the key file location.
var keyPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the plain-text key file",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(where.KeyFile())
	},
}
