package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/game"
	"github.com/decker502/swipedeck/pkg/render"
	"github.com/decker502/swipedeck/pkg/swiper"
	"github.com/decker502/swipedeck/pkg/systems"
	"github.com/decker502/swipedeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// BackgroundColor 场景背景色
var BackgroundColor = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}

// keyboardSwipeRatio 方向键触发滑动时使用的位移（占视口宽度的比例）
const keyboardSwipeRatio = 0.5

// DeckSceneConfig DeckScene 的依赖
type DeckSceneConfig struct {
	Deck         *config.DeckConfig
	SceneManager *game.SceneManager
	Settings     *game.SettingsManager
	Session      *game.SessionState

	// Pointer 指针输入，nil 时使用 Ebitengine 默认输入
	Pointer utils.PointerDevice
}

// DeckScene 卡片堆场景
//
// 组合 Swiper、SwipeInputSystem 和 DeckRenderer：
//   - 鼠标或触摸拖拽顶层卡片，方向键直接滑走顶层卡片
//   - D 键切换调试信息
//   - 全部滑完后切换到完成场景
type DeckScene struct {
	cfg      DeckSceneConfig
	deck     *swiper.Swiper[config.CardConfig]
	input    *systems.SwipeInputSystem
	renderer *render.DeckRenderer[config.CardConfig]

	footerFace  *text.GoTextFace
	snap        swiper.Snapshot[config.CardConfig] // 最近一次状态快照（调试信息使用）
	unsubscribe func()
	completed   bool
	finished    bool
	lastErr     error
}

// NewDeckScene 创建卡片堆场景
func NewDeckScene(cfg DeckSceneConfig) (*DeckScene, error) {
	if cfg.Deck == nil || len(cfg.Deck.Cards) == 0 {
		return nil, fmt.Errorf("new deck scene: %w", config.ErrEmptyDeck)
	}
	if cfg.Session == nil {
		cfg.Session = game.NewSessionState()
	}
	if cfg.Pointer == nil {
		cfg.Pointer = utils.DefaultPointerDevice()
	}

	s := &DeckScene{cfg: cfg}

	easing, _ := utils.EasingByName(cfg.Deck.Animation.SwipeOutEasing)
	deck, err := swiper.New(swiper.Config[config.CardConfig]{
		Data:          cfg.Deck.Cards,
		ViewportWidth: config.GameWindowWidth,
		OnSwipe: func(card config.CardConfig, index int) {
			log.Printf("[DeckScene] swipe %d: %s", index, card.Name)
		},
		OnSwipeLeft: func(card config.CardConfig, index int) {
			log.Printf("[DeckScene] left")
			cfg.Session.RecordSwipe(card.Name, false)
		},
		OnSwipeRight: func(card config.CardConfig, index int) {
			log.Printf("[DeckScene] right")
			cfg.Session.RecordSwipe(card.Name, true)
		},
		OnComplete: func() {
			log.Printf("[DeckScene] complete")
			s.completed = true
		},
		Animation: swiper.AnimationConfig{
			SwipeOutDuration: cfg.Deck.Animation.SwipeOutDuration(),
			SwipeOutEasing:   easing,
			SpringFrequency:  cfg.Deck.Animation.SpringFrequency,
			SpringDamping:    cfg.Deck.Animation.SpringDamping,
		},
	})
	if err != nil {
		return nil, err
	}
	s.deck = deck

	renderer, err := newDeckRenderer(cfg.Deck)
	if err != nil {
		return nil, err
	}
	s.renderer = renderer
	s.input = systems.NewSwipeInputSystemWithDevice(deck, renderer.HitTop, cfg.Pointer)

	s.snap = deck.Snapshot()
	s.unsubscribe = deck.Subscribe(s.onSnapshot)

	if s.footerFace, err = render.DefaultFace(18); err != nil {
		return nil, err
	}
	return s, nil
}

// newDeckRenderer 按卡片配置创建渲染器
func newDeckRenderer(deck *config.DeckConfig) (*render.DeckRenderer[config.CardConfig], error) {
	cardW, cardH := config.CardSize(config.GameWindowWidth)

	titleFace, err := render.DefaultFace(config.CardFontSize)
	if err != nil {
		return nil, err
	}
	subtitleFace, err := render.DefaultFace(18)
	if err != nil {
		return nil, err
	}
	labelFace, err := render.DefaultFace(config.LabelFontSize)
	if err != nil {
		return nil, err
	}

	painter := &render.CardPainter{
		Width:        int(cardW),
		Height:       int(cardH),
		TitleFace:    titleFace,
		SubtitleFace: subtitleFace,
	}

	return render.NewDeckRenderer(render.Options[config.CardConfig]{
		RenderCard: func(card config.CardConfig, index int) *ebiten.Image {
			bg, err := config.ParseHexColor(card.Color)
			if err != nil {
				bg = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
			}
			return painter.Paint(card.Name, card.Subtitle, bg)
		},
		LeftLabel:  render.NewTextLabel(deck.Labels.Left, labelFace, render.NopeColor),
		RightLabel: render.NewTextLabel(deck.Labels.Right, labelFace, render.LikeColor),
		X:          config.CardMarginX,
		Y:          config.CardMarginTop,
		Width:      cardW,
		Height:     cardH,
	})
}

// onSnapshot 记录卡片堆状态，顶层卡片变化时输出日志
func (s *DeckScene) onSnapshot(snap swiper.Snapshot[config.CardConfig]) {
	if snap.CurrentIndex != s.snap.CurrentIndex {
		log.Printf("[DeckScene] top card %d/%d", snap.CurrentIndex, snap.Length)
	}
	s.snap = snap
}

// Swiper 返回场景使用的卡片堆
func (s *DeckScene) Swiper() *swiper.Swiper[config.CardConfig] {
	return s.deck
}

// Update 更新场景
func (s *DeckScene) Update(deltaTime float64) {
	if s.completed {
		if !s.finished {
			s.finished = true
			s.finish()
		}
		return
	}

	s.input.Update(deltaTime)
	s.handleKeyboard()

	if err := s.deck.Update(deltaTime); err != nil {
		// 回调出错时卡片堆已经推进，只记录
		s.lastErr = err
		log.Printf("[DeckScene] callback error: %v", err)
	}
}

// handleKeyboard 方向键直接滑走顶层卡片，D 键切换调试信息
func (s *DeckScene) handleKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) && s.cfg.Settings != nil {
		s.cfg.Settings.ToggleShowDebug()
		if err := s.cfg.Settings.Save(); err != nil {
			log.Printf("[DeckScene] failed to save settings: %v", err)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.SwipeTop(swiper.OutcomeLeft)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.SwipeTop(swiper.OutcomeRight)
	}
}

// SwipeTop 以一次完整的手势把顶层卡片滑向指定方向
//
// 正在拖拽或动画进行中时忽略，返回是否开始了滑动。
func (s *DeckScene) SwipeTop(direction swiper.SwipeOutcome) bool {
	if !direction.IsSwipe() || s.input.Tracking() || s.deck.Phase() != swiper.PhaseIdle || s.deck.Exhausted() {
		return false
	}
	dx := keyboardSwipeRatio * s.deck.ViewportWidth()
	if direction == swiper.OutcomeLeft {
		dx = -dx
	}
	if err := s.deck.GestureStart(); err != nil {
		return false
	}
	s.deck.GestureMove(dx, 0)
	if _, err := s.deck.GestureEnd(dx, 0); err != nil {
		log.Printf("[DeckScene] keyboard swipe failed: %v", err)
		return false
	}
	return true
}

func (s *DeckScene) finish() {
	s.cfg.Session.FinishRound()
	log.Printf("[DeckScene] round %d finished with %d swipes", s.cfg.Session.Rounds, s.cfg.Session.Total())
	if s.cfg.SceneManager != nil {
		s.cfg.SceneManager.Load(game.SceneComplete)
	}
}

// OnLeave 离开场景时放弃正在进行的拖拽，停止订阅并释放卡片图像缓存
func (s *DeckScene) OnLeave() {
	s.input.Cancel()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.renderer.Invalidate()
}

// Draw 绘制场景
func (s *DeckScene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	cardW, cardH := config.CardSize(config.GameWindowWidth)
	if s.deck.Exhausted() {
		render.DrawPlaceholder(screen, config.CardMarginX, config.CardMarginTop, float32(cardW), float32(cardH))
	} else {
		s.renderer.Draw(screen, s.deck.DrawOrder(), s.deck.Channels())
	}

	if footer := s.cfg.Deck.Footer; footer != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.GameWindowWidth/2, config.CardMarginTop+cardH+30)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(render.CardTextColor)
		text.Draw(screen, footer, s.footerFace, op)
	}

	if s.cfg.Settings != nil && s.cfg.Settings.GetSettings().ShowDebug {
		s.drawDebug(screen)
	}
}

func (s *DeckScene) drawDebug(screen *ebiten.Image) {
	snap := s.snap
	msg := fmt.Sprintf("phase: %s\nindex: %d/%d\ndx: %.1f (T=%.1f)\nrot: %.2f deg\nscale: %.3f\nlabels: %.2f / %.2f",
		snap.Phase, snap.CurrentIndex, snap.Length,
		snap.Channels.OffsetX, s.deck.Threshold(),
		snap.Channels.Rotation, snap.Channels.ChildScale,
		snap.Channels.LeftLabelOpacity, snap.Channels.RightLabelOpacity)
	var cbErr *swiper.CallbackError
	if errors.As(s.lastErr, &cbErr) {
		msg += fmt.Sprintf("\nlast error: %s", cbErr.Callback)
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, config.GameWindowHeight-110)
}
