package main

import (
	"os"

	"github.com/korpuslab/docx2dict/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
