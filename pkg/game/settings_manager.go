package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DisplaySettings 演示程序的显示设置
type DisplaySettings struct {
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowDebug  bool `yaml:"showDebug"`  // 是否显示调试信息（阶段、位移、索引）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DisplaySettings {
	return &DisplaySettings{}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *DisplaySettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager 创建设置管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return sm
}

// Persistent 设置是否能持久化
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load 从 gdata 加载设置
// 没有存储或没有保存过时使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded DisplaySettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	sm.settings = &loaded
	log.Printf("[Settings] loaded: fullscreen=%v showDebug=%v", loaded.Fullscreen, loaded.ShowDebug)
	return nil
}

// Save 保存设置到 gdata
// 降级模式下不做任何事
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Settings] saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleShowDebug 切换调试信息显示，返回新的值
func (sm *SettingsManager) ToggleShowDebug() bool {
	sm.settings.ShowDebug = !sm.settings.ShowDebug
	return sm.settings.ShowDebug
}
