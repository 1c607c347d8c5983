package main

import (
	"os"

	"github.com/abhisek/quizwoiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
