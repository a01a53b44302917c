package main

import (
	"os"

	"github.com/tahadev/portfolio/cmd/portfolioctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
