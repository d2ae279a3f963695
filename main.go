// main is the entry point of the colorcurve CLI.
package main

import (
	"github.com/tjo-photometry/colorcurve/cmd"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/internal/history"
)

func main() {
	defer history.CloseHistory()
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot start CLI", err)
	}
}
