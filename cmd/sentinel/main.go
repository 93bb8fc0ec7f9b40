package main

import (
	"os"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
