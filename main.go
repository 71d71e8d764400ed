package main

import (
	"os"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
