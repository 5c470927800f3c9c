package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneDeck     = "deck"
	SceneComplete = "complete"
)

// SceneFactory 场景工厂函数类型
// 根据名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene receives OnLeave if it implements Leavable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if leavable, ok := sm.currentScene.(Leavable); ok && sm.currentScene != scene {
		leavable.OnLeave()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回最近一次通过 Load 切换的场景名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Load 通过工厂函数创建指定名称的场景并切换
//
// 返回：
//   - bool: 是否切换成功
func (sm *SceneManager) Load(name string) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	scene := sm.sceneFactory(name)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return false
	}
	sm.SwitchTo(scene)
	sm.currentName = name
	log.Printf("[SceneManager] 切换到场景: %s", name)
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
