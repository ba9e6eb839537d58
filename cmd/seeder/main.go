package main

import (
	"log"
	"os"

	"github.com/psds-microservice/seeder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(cmd.ExitCode(err))
	}
}
