package game

// SessionState 存储一轮滑动的统计
// 在卡片堆场景和完成场景之间共享，重新开始时清空
type SessionState struct {
	Liked  []string // 向右滑走的卡片
	Passed []string // 向左滑走的卡片
	Rounds int      // 已经完成的轮数
}

// NewSessionState 创建空的统计
func NewSessionState() *SessionState {
	return &SessionState{}
}

// RecordSwipe 记录一次滑动
func (s *SessionState) RecordSwipe(name string, liked bool) {
	if liked {
		s.Liked = append(s.Liked, name)
	} else {
		s.Passed = append(s.Passed, name)
	}
}

// Total 返回这一轮已经滑走的卡片数
func (s *SessionState) Total() int {
	return len(s.Liked) + len(s.Passed)
}

// FinishRound 标记一轮结束
func (s *SessionState) FinishRound() {
	s.Rounds++
}

// Reset 清空这一轮的记录，保留轮数
func (s *SessionState) Reset() {
	s.Liked = nil
	s.Passed = nil
}
