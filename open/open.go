// Package open hands pictures and video links to the system's default handler or a configured viewer.
package open

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/log"
	"github.com/spf13/viper"
)

var errUnsupported = fmt.Errorf("opening files is not supported on %s", runtime.GOOS)

// Image opens a picture with images.viewer, or the system default when unset.
// The viewer may carry arguments, as in "feh --fullscreen".
func Image(path string) error {
	log.Infof("Opening %s", path)

	cmd, ok := command(path, viper.GetString(key.ImagesViewer))
	if !ok {
		return errUnsupported
	}
	return cmd.Start()
}

// URL opens an http(s) link in the default browser.
func URL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.New("not a web link: " + u)
	}

	log.Infof("Opening %s", u)

	cmd, ok := command(u, "")
	if !ok {
		return errUnsupported
	}
	return cmd.Start()
}

// command builds the process opening input, with app when set and the platform handler otherwise.
func command(input, viewer string) (*exec.Cmd, bool) {
	app := strings.Fields(viewer)
	if len(app) > 0 {
		return commandWith(input, app[0], app[1:])
	}

	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}

func commandWith(input, app string, args []string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		// start treats & as a command separator.
		escaped := strings.ReplaceAll(input, "&", "^&")
		return exec.Command("cmd", append(append([]string{"/C", "start", "", app}, args...), escaped)...), true
	case constant.Darwin:
		return exec.Command("open", append(append([]string{"-a", app}, input, "--args"), args...)...), true
	case constant.Linux, constant.Android:
		return exec.Command(app, append(args, input)...), true
	default:
		return nil, false
	}
}
