package systems

import (
	"testing"

	"github.com/decker502/swipedeck/pkg/swiper"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockSwipePointer 模拟鼠标输入
type mockSwipePointer struct {
	justPressed bool
	pressed     bool
	x, y        int
}

func (m *mockSwipePointer) JustPressedTouchIDs() []ebiten.TouchID   { return nil }
func (m *mockSwipePointer) TouchIDs() []ebiten.TouchID              { return nil }
func (m *mockSwipePointer) TouchPosition(ebiten.TouchID) (int, int) { return 0, 0 }
func (m *mockSwipePointer) IsMouseButtonJustPressed() bool          { return m.justPressed }
func (m *mockSwipePointer) IsMouseButtonPressed() bool              { return m.pressed }
func (m *mockSwipePointer) CursorPosition() (int, int)              { return m.x, m.y }

// frame 推进一帧：justPressed 只持续一帧
func (m *mockSwipePointer) frame(s *SwipeInputSystem) {
	s.Update(1.0 / 60.0)
	m.justPressed = false
}

func newTestSwiper(t *testing.T, data []string) *swiper.Swiper[string] {
	t.Helper()
	s, err := swiper.New(swiper.Config[string]{Data: data, ViewportWidth: 300})
	if err != nil {
		t.Fatalf("swiper.New error: %v", err)
	}
	return s
}

// TestSwipeInputSystem_Drag 测试拖拽转换为手势
func TestSwipeInputSystem_Drag(t *testing.T) {
	tests := []struct {
		name  string
		endX  int
		want  swiper.SwipeOutcome
		phase swiper.Phase
	}{
		{"向右超过阈值", 250, swiper.OutcomeRight, swiper.PhaseSettling},
		{"向左超过阈值", 50, swiper.OutcomeLeft, swiper.PhaseSettling},
		{"未超过阈值回弹", 180, swiper.OutcomeCancelled, swiper.PhaseResetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := newTestSwiper(t, []string{"a", "b"})
			ptr := &mockSwipePointer{}
			sys := NewSwipeInputSystemWithDevice(deck, func(x, y float64) bool { return true }, ptr)

			var outcomes []swiper.SwipeOutcome
			sys.OnOutcome = func(o swiper.SwipeOutcome) { outcomes = append(outcomes, o) }

			// 在 x=150 按下
			ptr.justPressed, ptr.pressed, ptr.x, ptr.y = true, true, 150, 400
			ptr.frame(sys)
			if !sys.Tracking() || deck.Phase() != swiper.PhaseDragging {
				t.Fatalf("按下后应开始拖拽, phase=%s", deck.Phase())
			}

			// 移动
			ptr.x = tt.endX
			ptr.frame(sys)
			if got := deck.Channels().OffsetX; got != float64(tt.endX-150) {
				t.Errorf("OffsetX = %v, want %d", got, tt.endX-150)
			}

			// 松开
			ptr.pressed = false
			ptr.frame(sys)
			if sys.Tracking() {
				t.Error("松开后不应继续跟踪")
			}
			if len(outcomes) != 1 || outcomes[0] != tt.want {
				t.Errorf("outcomes = %v, want [%v]", outcomes, tt.want)
			}
			if deck.Phase() != tt.phase {
				t.Errorf("phase = %s, want %s", deck.Phase(), tt.phase)
			}
		})
	}
}

// TestSwipeInputSystem_MissTopCard 按下位置不在顶层卡片上时不开始手势
func TestSwipeInputSystem_MissTopCard(t *testing.T) {
	deck := newTestSwiper(t, []string{"a"})
	ptr := &mockSwipePointer{}
	sys := NewSwipeInputSystemWithDevice(deck, func(x, y float64) bool { return x < 100 }, ptr)

	ptr.justPressed, ptr.pressed, ptr.x = true, true, 200
	ptr.frame(sys)
	ptr.x = 400
	ptr.frame(sys)

	if sys.Tracking() || deck.Phase() != swiper.PhaseIdle {
		t.Errorf("未命中卡片不应开始手势, phase=%s", deck.Phase())
	}
	if deck.Channels().OffsetX != 0 {
		t.Errorf("OffsetX = %v, want 0", deck.Channels().OffsetX)
	}
}

// TestSwipeInputSystem_IgnoreDuringAnimation 动画进行中的按下被忽略
func TestSwipeInputSystem_IgnoreDuringAnimation(t *testing.T) {
	deck := newTestSwiper(t, []string{"a", "b"})
	ptr := &mockSwipePointer{}
	sys := NewSwipeInputSystemWithDevice(deck, nil, ptr)

	ptr.justPressed, ptr.pressed, ptr.x = true, true, 100
	ptr.frame(sys)
	ptr.x = 300
	ptr.frame(sys)
	ptr.pressed = false
	ptr.frame(sys)
	if deck.Phase() != swiper.PhaseSettling {
		t.Fatalf("phase = %s, want settling", deck.Phase())
	}

	// 第二次按下落在飞出动画期间
	ptr.frame(sys) // Ended -> None
	ptr.justPressed, ptr.pressed, ptr.x = true, true, 100
	ptr.frame(sys)
	if sys.Tracking() {
		t.Error("飞出动画期间不应开始新的手势")
	}
	if deck.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", deck.CurrentIndex())
	}
}

// TestSwipeInputSystem_Cancel 取消时卡片回弹
func TestSwipeInputSystem_Cancel(t *testing.T) {
	deck := newTestSwiper(t, []string{"a"})
	ptr := &mockSwipePointer{}
	sys := NewSwipeInputSystemWithDevice(deck, nil, ptr)

	ptr.justPressed, ptr.pressed, ptr.x = true, true, 100
	ptr.frame(sys)
	ptr.x = 260
	ptr.frame(sys)

	sys.Cancel()
	if sys.Tracking() {
		t.Error("Cancel 后不应继续跟踪")
	}
	if deck.Phase() != swiper.PhaseResetting {
		t.Errorf("phase = %s, want resetting", deck.Phase())
	}
}
