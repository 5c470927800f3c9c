//go:build swiperdebug

package swiper

import (
	"errors"
	"testing"
)

// 运行方式: go test -tags swiperdebug ./pkg/swiper/

// mustPanicWith 断言 fn panic 且 panic 的值包装了 target
func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("panic value = %v, want %v", r, target)
		}
	}()
	fn()
}

func TestStrict_InvalidStatePanics(t *testing.T) {
	t.Run("滑完后开始手势", func(t *testing.T) {
		s, err := New(Config[string]{ViewportWidth: testViewportWidth})
		if err != nil {
			t.Fatal(err)
		}
		mustPanicWith(t, ErrDeckExhausted, func() { _ = s.GestureStart() })
	})

	t.Run("拖拽中再次开始手势", func(t *testing.T) {
		h := newHarness(t, []string{"a"})
		if err := h.s.GestureStart(); err != nil {
			t.Fatal(err)
		}
		mustPanicWith(t, ErrGestureInProgress, func() { _ = h.s.GestureStart() })
	})

	t.Run("没有手势时松开", func(t *testing.T) {
		h := newHarness(t, []string{"a"})
		mustPanicWith(t, ErrNoActiveGesture, func() { _, _ = h.s.GestureEnd(100, 0) })
	})

	t.Run("滑完后结算", func(t *testing.T) {
		sc := NewStackController[string](nil, Callbacks[string]{})
		mustPanicWith(t, ErrDeckExhausted, func() { _ = sc.OnSwipeSettled(OutcomeLeft) })
	})
}

// TestStrict_GestureStartInsideCallback 回调中的非法调用以 CallbackError 返回，索引照常推进
func TestStrict_GestureStartInsideCallback(t *testing.T) {
	var s *Swiper[string]
	var err error
	s, err = New(Config[string]{
		Data:          []string{"a", "b"},
		ViewportWidth: testViewportWidth,
		OnSwipe:       func(string, int) { _ = s.GestureStart() },
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.GestureStart(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GestureEnd(200, 0); err != nil {
		t.Fatal(err)
	}

	var gotErr error
	for i := 0; i < 60 && s.Phase() != PhaseIdle; i++ {
		if err := s.Update(frame); err != nil {
			gotErr = err
		}
	}
	var cbErr *CallbackError
	if !errors.As(gotErr, &cbErr) || !errors.Is(gotErr, ErrGestureInProgress) {
		t.Errorf("Update error = %v, want CallbackError wrapping ErrGestureInProgress", gotErr)
	}
	if s.CurrentIndex() != 1 || s.Phase() != PhaseIdle {
		t.Errorf("index = %d, phase = %s", s.CurrentIndex(), s.Phase())
	}
}
