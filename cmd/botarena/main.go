package main

import "github.com/mcoot/botarena/internal/cli"

func main() {
	cli.Execute()
}
