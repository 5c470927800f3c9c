package main

import (
	"os"

	"github.com/decker502/swipedeck/cmd/swipedeck/commands"
	"github.com/decker502/swipedeck/pkg/embedded"
)

func main() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
