package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/decker502/swipedeck/pkg/app"
	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/embedded"
)

// embeddedDeckPattern 不带参数时检查的嵌入卡片堆
const embeddedDeckPattern = "data/*.yaml"

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a deck YAML file (default: every embedded deck)",
		Args:  cobra.MaximumNArgs(1),
		// 不需要根命令预先加载卡片堆
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.ConfigureLogging(verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return validateEmbedded(cmd.OutOrStdout())
			}
			cfg, err := config.LoadDeckConfig(args[0])
			if err != nil {
				return err
			}
			printDeck(cmd.OutOrStdout(), args[0], cfg)
			return nil
		},
	}
	return cmd
}

// validateEmbedded 检查所有嵌入的卡片堆配置
func validateEmbedded(out io.Writer) error {
	paths, err := embedded.Glob(embeddedDeckPattern)
	if err != nil {
		return fmt.Errorf("list embedded decks: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no embedded deck matches %s", embeddedDeckPattern)
	}
	for _, path := range paths {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return err
		}
		cfg, err := config.ParseDeckConfig(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		printDeck(out, path, cfg)
	}
	return nil
}

func printDeck(out io.Writer, path string, cfg *config.DeckConfig) {
	fmt.Fprintf(out, "%s: %q, %d cards\n", path, cfg.Title, len(cfg.Cards))
}
