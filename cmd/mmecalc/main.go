package main

import (
	"os"

	"MMECalc/cmd/mmecalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
