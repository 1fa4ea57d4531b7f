package main

import (
	"context"
	"os"

	"github.com/kiosk404/worldlogic/internal/worldcheck/cmd"
)

func main() {
	command := cmd.NewDefaultWorldCheckCommand()
	if err := command.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
