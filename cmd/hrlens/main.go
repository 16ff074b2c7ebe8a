package main

import "github.com/hrlens-org/hrlens/cli"

func main() {
	cli.Execute()
}
