// Package scenes 包含演示程序的场景：卡片堆和完成画面
package scenes

import (
	"log"

	"github.com/decker502/swipedeck/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Factory 创建 game.SceneFactory，按名称构建场景
//
// 卡片堆和完成场景共享同一个 SessionState。
// 场景创建失败时返回 nil，由 SceneManager 记录错误。
func Factory(cfg DeckSceneConfig) game.SceneFactory {
	if cfg.Session == nil {
		cfg.Session = game.NewSessionState()
	}
	return func(name string) game.Scene {
		switch name {
		case game.SceneDeck:
			scene, err := NewDeckScene(cfg)
			if err != nil {
				log.Printf("[Scenes] failed to create deck scene: %v", err)
				return nil
			}
			return scene
		case game.SceneComplete:
			scene, err := NewCompleteScene(cfg.SceneManager, cfg.Session, cfg.Pointer)
			if err != nil {
				log.Printf("[Scenes] failed to create complete scene: %v", err)
				return nil
			}
			return scene
		}
		return nil
	}
}
