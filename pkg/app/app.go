// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 cmd/swipedeck/commands 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/game"
	"github.com/decker502/swipedeck/pkg/scenes"
	"github.com/decker502/swipedeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "swipedeck"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Deck 卡片堆配置，nil 时使用内置的演示卡片堆
	Deck *config.DeckConfig
	// Fullscreen 强制全屏启动（不修改已保存的设置）
	Fullscreen bool
	// DisablePersistence 不使用 gdata 持久化设置（测试用）
	DisablePersistence bool
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	deck                     *config.DeckConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// ConfigureLogging 未启用详细日志时丢弃所有 log 输出
func ConfigureLogging(verbose bool) {
	if verbose {
		return
	}
	log.SetOutput(io.Discard)
	log.SetFlags(0)
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	ConfigureLogging(cfg.Verbose)

	deck := cfg.Deck
	if deck == nil {
		deck = config.DefaultDeck()
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("卡片堆配置无效: %w", err)
	}

	var gdataManager *gdata.Manager
	if !cfg.DisablePersistence {
		if _, err := utils.PrepareStorage(AppName); err != nil {
			log.Printf("[App] failed to prepare storage: %v", err)
		}
		m, err := gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			// 无法持久化不影响运行
			log.Printf("[App] gdata unavailable, settings will not be saved: %v", err)
		} else {
			gdataManager = m
		}
	}
	settings := game.NewSettingsManager(gdataManager)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.Factory(scenes.DeckSceneConfig{
		Deck:         deck,
		SceneManager: sceneManager,
		Settings:     settings,
		Session:      game.NewSessionState(),
	}))
	if !sceneManager.Load(game.SceneDeck) {
		return nil, fmt.Errorf("卡片堆场景创建失败")
	}

	fullscreen := cfg.Fullscreen || settings.GetSettings().Fullscreen
	log.Printf("[App] Starting deck %q with %d cards in scene %s (fullscreen=%v, persistent settings=%v)",
		deck.Title, len(deck.Cards), sceneManager.CurrentName(), fullscreen, settings.Persistent())

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		deck:         deck,
	}, nil
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.deck.Title
}

// StartFullscreen 是否应该全屏启动
func (a *App) StartFullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭（需要 ebiten.SetWindowClosingHandled(true)）
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏并保存
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] failed to save settings: %v", err)
	}
}

// Shutdown 退出前离开当前场景并保存设置
func (a *App) Shutdown() {
	if leavable, ok := a.sceneManager.GetCurrentScene().(game.Leavable); ok {
		leavable.OnLeave()
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] failed to save settings on exit: %v", err)
	}
	log.Printf("[App] Shutdown")
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放；
// 视口宽度（滑动阈值的基准）始终是逻辑宽度
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
