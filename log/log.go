// Package log writes diagnostics to a daily file under the logs directory.
// Nothing is written unless logs.write is enabled.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// keepDays is how long daily log files are kept.
const keepDays = 14

var (
	enabled bool
	logger  = logrus.New()
)

// Setup opens today's log file and applies logs.level and logs.json.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")

	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	removeOld(dir, time.Now().AddDate(0, 0, -keepDays))
	return nil
}

// removeOld deletes daily log files dated before cutoff.
func removeOld(dir string, cutoff time.Time) {
	infos, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return
	}

	old := lo.Filter(infos, func(info os.FileInfo, _ int) bool {
		day, err := time.Parse("2006-01-02", strings.TrimSuffix(info.Name(), ".log"))
		return err == nil && day.Before(cutoff)
	})

	for _, info := range old {
		_ = filesystem.API().Remove(filepath.Join(dir, info.Name()))
	}
}

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logger.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logger.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logger.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
