package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the demo (the card deck, the completion screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Leavable 是一个可选接口，场景被切换走之前调用 OnLeave
//
// 卡片堆场景用它放弃正在进行的拖拽。
type Leavable interface {
	OnLeave()
}
