package main

import (
	"os"

	"github.com/mailapi-dev/mailapi-go/cmd/mailapi/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
