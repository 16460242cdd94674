package main

import (
	"os"

	"github.com/contactvanshdev-code/restaurant-website/internal/cli"
)

// Same entrypoint as cmd/emberoak, so `go run .` works from the root.
func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
