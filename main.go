// Package main is the entry point for apod.
package main

import (
	"github.com/apod-cli/apod/cmd"
	"github.com/apod-cli/apod/config"
	"github.com/apod-cli/apod/internal/cache"
	"github.com/apod-cli/apod/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage()

	cmd.Execute()
}
