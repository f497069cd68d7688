package main

import "github.com/aalvaropc/orchard/internal/cli"

func main() {
	cli.Execute()
}
