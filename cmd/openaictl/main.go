package main

import (
	"os"

	"github.com/harisaicharan3/openaictl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
