package main

import (
	"log"

	"github.com/saravana87/azure-search-rest-ops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
