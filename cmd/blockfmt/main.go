package main

import (
	"fmt"
	"os"

	"github.com/mithrel/blockfmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blockfmt:", err)
		os.Exit(1)
	}
}
