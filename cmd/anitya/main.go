package main

import (
	"github.com/pombredanne/anitya/pkg/cli"
)

func main() {
	cli.Run()
}
