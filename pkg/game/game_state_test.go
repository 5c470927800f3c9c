package game

import "testing"

func TestSessionState(t *testing.T) {
	s := NewSessionState()

	s.RecordSwipe("Foo", true)
	s.RecordSwipe("Baz", false)
	s.RecordSwipe("Lo", true)

	if s.Total() != 3 {
		t.Errorf("Total() = %d, want 3", s.Total())
	}
	if len(s.Liked) != 2 || s.Liked[0] != "Foo" || s.Liked[1] != "Lo" {
		t.Errorf("Liked = %v", s.Liked)
	}
	if len(s.Passed) != 1 || s.Passed[0] != "Baz" {
		t.Errorf("Passed = %v", s.Passed)
	}

	s.FinishRound()
	s.Reset()
	if s.Total() != 0 {
		t.Errorf("Reset 后 Total() = %d, want 0", s.Total())
	}
	if s.Rounds != 1 {
		t.Errorf("Reset 不应该清空轮数, Rounds = %d", s.Rounds)
	}
}
