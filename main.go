package main

import (
	"os"

	"mallorn/cmd"
	"mallorn/internal"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if internal.IsInvalidInput(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
