package main

import (
	"os"

	"bennypowers.dev/themify/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
