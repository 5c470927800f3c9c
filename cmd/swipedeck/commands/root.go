package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/decker502/swipedeck/pkg/app"
	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/embedded"
)

var (
	deckPath   string
	verbose    bool
	fullscreen bool

	deck *config.DeckConfig
)

// Execute 构建根命令并运行
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "swipedeck",
		Short:        "Swipeable card stack demo",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prepareDeck()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeck(deck)
		},
	}

	root.PersistentFlags().StringVar(&deckPath, "deck", "", "deck YAML file (default: embedded data/deck.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen mode")

	root.AddCommand(runCmd(), validateCmd())
	return root
}

// prepareDeck 设置日志输出后加载 --deck 指定的卡片堆
func prepareDeck() error {
	app.ConfigureLogging(verbose)
	cfg, err := loadDeck(deckPath)
	if err != nil {
		return err
	}
	deck = cfg
	return nil
}

// loadDeck 加载卡片堆配置
//
// 参数：
//   - path: 配置文件路径，为空时依次尝试嵌入资源和内置卡片堆
//
// 返回：
//   - *config.DeckConfig: 验证后的配置
//   - error: 指定的文件无法加载
func loadDeck(path string) (*config.DeckConfig, error) {
	if path != "" {
		cfg, err := config.LoadDeckConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load deck: %w", err)
		}
		return cfg, nil
	}

	switch {
	case !embedded.IsInitialized():
		log.Printf("[CLI] embedded resources not initialized, using built-in deck")
		return config.DefaultDeck(), nil
	case !embedded.Exists(config.DefaultDeckPath):
		log.Printf("[CLI] %s is not embedded, using built-in deck", config.DefaultDeckPath)
		return config.DefaultDeck(), nil
	}
	data, err := embedded.ReadFile(config.DefaultDeckPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded deck: %w", err)
	}
	cfg, err := config.ParseDeckConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", config.DefaultDeckPath, err)
	}
	return cfg, nil
}
