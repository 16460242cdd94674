package main

import (
	"os"

	"github.com/contactvanshdev-code/restaurant-website/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
