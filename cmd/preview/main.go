package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"hashpix_backend/config"
	"hashpix_backend/preview"
	"hashpix_backend/services"
)

func main() {
	config.LoadEnv()
	maxInput := config.GetEnvInt("MAX_INPUT_LENGTH", services.DefaultMaxInputLength)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	p := preview.New(screen, services.NewAvatarService(services.WithMaxInputLength(maxInput)))
	if len(os.Args) > 1 {
		p.SetInput(os.Args[1])
	} else {
		p.Regenerate()
	}
	if err := p.Run(context.Background()); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Preview failed: %v\n", err)
		os.Exit(1)
	}
}
