package scenes

import (
	"fmt"
	"strings"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/game"
	"github.com/decker502/swipedeck/pkg/render"
	"github.com/decker502/swipedeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CompleteScene 全部卡片滑完后的场景
// 显示本轮统计，点击或按回车重新开始
type CompleteScene struct {
	sceneManager *game.SceneManager
	session      *game.SessionState
	pointer      utils.PointerDevice

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace
}

// NewCompleteScene 创建完成场景
// pointer 为 nil 时使用 Ebitengine 默认输入
func NewCompleteScene(sm *game.SceneManager, session *game.SessionState, pointer utils.PointerDevice) (*CompleteScene, error) {
	if session == nil {
		session = game.NewSessionState()
	}
	if pointer == nil {
		pointer = utils.DefaultPointerDevice()
	}
	titleFace, err := render.DefaultFace(32)
	if err != nil {
		return nil, err
	}
	bodyFace, err := render.DefaultFace(18)
	if err != nil {
		return nil, err
	}
	return &CompleteScene{
		sceneManager: sm,
		session:      session,
		pointer:      pointer,
		titleFace:    titleFace,
		bodyFace:     bodyFace,
	}, nil
}

// Update 检测重新开始
func (s *CompleteScene) Update(deltaTime float64) {
	pressed, _, _ := utils.IsPointerJustPressed(s.pointer)
	if pressed || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Restart()
	}
}

// Restart 清空本轮统计并回到卡片堆
func (s *CompleteScene) Restart() {
	s.session.Reset()
	if s.sceneManager != nil {
		s.sceneManager.Load(game.SceneDeck)
	}
}

// Summary 返回统计文字
func (s *CompleteScene) Summary() []string {
	lines := []string{
		fmt.Sprintf("Liked %d, passed %d", len(s.session.Liked), len(s.session.Passed)),
	}
	if len(s.session.Liked) > 0 {
		lines = append(lines, "Liked: "+strings.Join(s.session.Liked, ", "))
	}
	if s.session.Rounds > 1 {
		lines = append(lines, fmt.Sprintf("Round %d", s.session.Rounds))
	}
	return lines
}

// Draw 绘制场景
func (s *CompleteScene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	cx := float64(config.GameWindowWidth) / 2
	y := float64(config.GameWindowHeight) / 3

	s.drawCentered(screen, "All cards swiped", s.titleFace, cx, y)
	y += 60
	for _, line := range s.Summary() {
		for _, wrapped := range utils.WrapText(line, s.bodyFace, config.GameWindowWidth-2*config.CardMarginX) {
			s.drawCentered(screen, wrapped, s.bodyFace, cx, y)
			y += 28
		}
	}
	s.drawCentered(screen, RestartHint(), s.bodyFace, cx, float64(config.GameWindowHeight)-80)
}

// RestartHint 返回重新开始的提示文字
func RestartHint() string {
	if utils.IsMobile() {
		return "Tap to restart"
	}
	return "Click or press Enter to restart"
}

func (s *CompleteScene) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(render.CardTextColor)
	text.Draw(screen, str, face, op)
}
