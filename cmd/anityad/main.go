package main

import (
	"log"

	"github.com/pombredanne/anitya/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
