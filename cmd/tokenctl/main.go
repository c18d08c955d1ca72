package main

import (
	"os"

	"github.com/aussiebroadwan/tokend/internal/tokenctl"
)

func main() {
	if err := tokenctl.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
