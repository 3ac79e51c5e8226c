package main

import (
	"os"
	_ "time/tzdata"

	"github.com/msto63/calendar/cmd/calendar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
