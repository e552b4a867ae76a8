package main

import (
	"os"

	"github.com/artemsultanov-dotcom/colreg-quiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
