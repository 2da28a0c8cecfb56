package main

import "github.com/katalvlaran/schoolnet/internal/cli"

func main() {
	cli.Execute()
}
