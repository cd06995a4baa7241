package main

import (
	"log"

	"github.com/spigell/bd-radar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
