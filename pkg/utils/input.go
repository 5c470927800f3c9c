// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerDevice 指针输入接口
// 统一鼠标和触摸输入，用于依赖注入，支持测试时 mock
type PointerDevice interface {
	JustPressedTouchIDs() []ebiten.TouchID
	TouchIDs() []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	IsMouseButtonJustPressed() bool
	IsMouseButtonPressed() bool
	CursorPosition() (int, int)
}

// ebitenPointerDevice Ebitengine 默认实现
type ebitenPointerDevice struct{}

func (ebitenPointerDevice) JustPressedTouchIDs() []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(nil)
}

func (ebitenPointerDevice) TouchIDs() []ebiten.TouchID {
	return ebiten.AppendTouchIDs(nil)
}

func (ebitenPointerDevice) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenPointerDevice) IsMouseButtonJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointerDevice) IsMouseButtonPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointerDevice) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// DefaultPointerDevice 返回读取 Ebitengine 输入的默认实现
func DefaultPointerDevice() PointerDevice {
	return ebitenPointerDevice{}
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed(device PointerDevice) (bool, int, int) {
	if ids := device.JustPressedTouchIDs(); len(ids) > 0 {
		x, y := device.TouchPosition(ids[0])
		return true, x, y
	}
	if device.IsMouseButtonJustPressed() {
		x, y := device.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// ============================================================================
// 拖拽状态管理器 - 用于卡片滑动的拖拽交互
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// String 返回状态名称（用于日志）
func (s DragState) String() string {
	switch s {
	case DragStateNone:
		return "none"
	case DragStateStarted:
		return "started"
	case DragStateDragging:
		return "dragging"
	case DragStateEnded:
		return "ended"
	}
	return "unknown"
}

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1 表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪单个触摸/鼠标的拖拽状态，其余手指被忽略
type DragManager struct {
	device PointerDevice
	info   DragInfo
}

// NewDragManager 创建拖拽管理器
// device 为 nil 时使用 Ebitengine 默认输入
func NewDragManager(device PointerDevice) *DragManager {
	if device == nil {
		device = DefaultPointerDevice()
	}
	return &DragManager{
		device: device,
		info: DragInfo{
			State:   DragStateNone,
			TouchID: -1,
		},
	}
}

// Update 更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	currentTouchIDs := dm.device.TouchIDs()

	switch dm.info.State {
	case DragStateNone:
		// 检测新的拖拽开始
		dm.checkDragStart()

	case DragStateStarted:
		// 从开始状态转换到拖拽中；如果已经松开，直接结束
		if dm.checkDragEnd(currentTouchIDs) {
			dm.info.State = DragStateEnded
		} else {
			dm.info.State = DragStateDragging
			dm.updateCurrentPosition(currentTouchIDs)
		}

	case DragStateDragging:
		// 检测拖拽结束或更新位置
		if dm.checkDragEnd(currentTouchIDs) {
			dm.info.State = DragStateEnded
		} else {
			dm.updateCurrentPosition(currentTouchIDs)
		}

	case DragStateEnded:
		// 结束状态只持续一帧，下一帧重置，并允许同一帧开始新的拖拽
		dm.Reset()
		dm.checkDragStart()
	}
}

// checkDragStart 检测拖拽开始
func (dm *DragManager) checkDragStart() {
	// 优先检测触摸输入
	if ids := dm.device.JustPressedTouchIDs(); len(ids) > 0 {
		touchID := ids[0]
		x, y := dm.device.TouchPosition(touchID)
		dm.info = DragInfo{
			State:        DragStateStarted,
			StartX:       x,
			StartY:       y,
			CurrentX:     x,
			CurrentY:     y,
			TouchID:      touchID,
			IsTouchInput: true,
		}
		return
	}

	// 检测鼠标输入
	if dm.device.IsMouseButtonJustPressed() {
		x, y := dm.device.CursorPosition()
		dm.info = DragInfo{
			State:        DragStateStarted,
			StartX:       x,
			StartY:       y,
			CurrentX:     x,
			CurrentY:     y,
			TouchID:      -1,
			IsTouchInput: false,
		}
	}
}

// checkDragEnd 检测拖拽结束
// 触摸释放时保留最后一次记录的位置
func (dm *DragManager) checkDragEnd(currentTouchIDs []ebiten.TouchID) bool {
	if dm.info.IsTouchInput {
		for _, id := range currentTouchIDs {
			if id == dm.info.TouchID {
				return false // 触摸仍然活跃
			}
		}
		return true // 触摸已释放
	}

	// 检测鼠标释放
	return !dm.device.IsMouseButtonPressed()
}

// updateCurrentPosition 更新当前位置
func (dm *DragManager) updateCurrentPosition(currentTouchIDs []ebiten.TouchID) {
	if dm.info.IsTouchInput {
		for _, id := range currentTouchIDs {
			if id == dm.info.TouchID {
				dm.info.CurrentX, dm.info.CurrentY = dm.device.TouchPosition(id)
				return
			}
		}
		return
	}
	dm.info.CurrentX, dm.info.CurrentY = dm.device.CursorPosition()
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}
