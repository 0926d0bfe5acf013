package main

import (
	"log"

	"github.com/charnpreetsingh/just-in-time-recruiter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
