//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.swipedeck -o build/android/swipedeck.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/SwipeDeck.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/swipedeck/pkg/app"
	"github.com/decker502/swipedeck/pkg/config"
)

func init() {
	// 移动端不读取配置文件，使用内置的演示卡片堆
	cfg := app.Config{
		Verbose: true,
		Deck:    config.DefaultDeck(),
	}

	deckApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(deckApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
