package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Populated at build time via -ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := Execute(); err != nil {
		log.Error().Err(err).Msg("herfiles failed")
		os.Exit(1)
	}
}
