package main

import (
	"os"

	"github.com/FHQ-Lab/Buatsoalujian-ai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
