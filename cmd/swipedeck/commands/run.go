package commands

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/swipedeck/pkg/app"
	"github.com/decker502/swipedeck/pkg/config"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the card stack window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeck(deck)
		},
	}
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen mode")
	return cmd
}

// runDeck 打开窗口并运行卡片堆，窗口关闭后返回
func runDeck(cfg *config.DeckConfig) error {
	a, err := app.NewApp(app.Config{
		Verbose:    verbose,
		Deck:       cfg,
		Fullscreen: fullscreen,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(a.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时由 App.Update 保存设置后退出
	ebiten.SetWindowClosingHandled(true)
	if fullscreen || a.StartFullscreen() {
		ebiten.SetFullscreen(true)
	}
	return ebiten.RunGame(a)
}
