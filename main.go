// Package main is the entry point of the protokoll CLI.
package main

import (
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/cmd"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("protokoll", err)
	}
}
