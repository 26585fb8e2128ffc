package main

import "github.com/ordkamp/ordkamp/internal/cli"

func main() {
	cli.Execute()
}
