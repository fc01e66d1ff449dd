package main

import (
	"github.com/warzonemc/mars/internal/cli"
)

func main() {
	cli.Execute()
}
