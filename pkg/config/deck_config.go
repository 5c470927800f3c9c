package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/swipedeck/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultDeckPath 内置卡片堆配置的路径（embed.FS 内）
const DefaultDeckPath = "data/deck.yaml"

// ErrEmptyDeck 配置中没有卡片
var ErrEmptyDeck = errors.New("deck has no cards")

// DeckConfig 卡片堆配置数据结构
type DeckConfig struct {
	Title     string            `yaml:"title"`     // 标题，显示在窗口标题栏
	Footer    string            `yaml:"footer"`    // 卡片堆下方的文字（可选）
	Cards     []CardConfig      `yaml:"cards"`     // 卡片列表，按显示顺序排列
	Animation AnimationOverride `yaml:"animation"` // 动画参数覆盖（可选）
	Labels    LabelConfig       `yaml:"labels"`    // 左右标签文字覆盖（可选）
}

// CardConfig 单张卡片
type CardConfig struct {
	Name     string `yaml:"name"`     // 卡片标题（必填）
	Subtitle string `yaml:"subtitle"` // 副标题（可选）
	Color    string `yaml:"color"`    // 背景色，格式 #rrggbb，默认 #eeeeee
}

// AnimationOverride 动画参数覆盖，零值表示使用默认值
type AnimationOverride struct {
	SwipeOutMs      int     `yaml:"swipeOutMs"`      // 飞出时长（毫秒）
	SwipeOutEasing  string  `yaml:"swipeOutEasing"`  // 飞出缓动：linear, outCubic, outQuad
	SpringFrequency float64 `yaml:"springFrequency"` // 回弹弹簧角频率
	SpringDamping   float64 `yaml:"springDamping"`   // 回弹弹簧阻尼比
}

// LabelConfig 左右标签文字
type LabelConfig struct {
	Left  string `yaml:"left"`  // 默认 "Nope"
	Right string `yaml:"right"` // 默认 "Like"
}

// LoadDeckConfig 从 YAML 文件加载卡片堆配置
//
// 参数：
//   - filepath: 配置文件路径
//
// 返回：
//   - *DeckConfig: 解析并验证后的配置
//   - error: 读取、解析或验证失败
func LoadDeckConfig(filepath string) (*DeckConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck config file %s: %w", filepath, err)
	}
	cfg, err := ParseDeckConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseDeckConfig 解析 YAML 数据并验证
func ParseDeckConfig(data []byte) (*DeckConfig, error) {
	var cfg DeckConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse deck config YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck config: %w", err)
	}
	return &cfg, nil
}

func (c *DeckConfig) applyDefaults() {
	if c.Title == "" {
		c.Title = "Swipe Deck"
	}
	if c.Labels.Left == "" {
		c.Labels.Left = "Nope"
	}
	if c.Labels.Right == "" {
		c.Labels.Right = "Like"
	}
	for i := range c.Cards {
		if c.Cards[i].Color == "" {
			c.Cards[i].Color = "#eeeeee"
		}
	}
}

// Validate 验证配置的完整性和合法性
func (c *DeckConfig) Validate() error {
	if len(c.Cards) == 0 {
		return ErrEmptyDeck
	}
	for i, card := range c.Cards {
		if strings.TrimSpace(card.Name) == "" {
			return fmt.Errorf("card %d: name is required", i)
		}
		if card.Color != "" {
			if _, err := ParseHexColor(card.Color); err != nil {
				return fmt.Errorf("card %d (%s): %w", i, card.Name, err)
			}
		}
	}

	a := c.Animation
	if a.SwipeOutMs < 0 {
		return fmt.Errorf("animation.swipeOutMs must be positive, got %d", a.SwipeOutMs)
	}
	if a.SpringFrequency < 0 {
		return fmt.Errorf("animation.springFrequency must be positive, got %g", a.SpringFrequency)
	}
	if a.SpringDamping < 0 {
		return fmt.Errorf("animation.springDamping must be positive, got %g", a.SpringDamping)
	}
	if _, ok := utils.EasingByName(a.SwipeOutEasing); !ok {
		return fmt.Errorf("animation.swipeOutEasing must be one of: linear, outCubic, outQuad, got %q", a.SwipeOutEasing)
	}
	return nil
}

// SwipeOutDuration 飞出时长，未配置时返回 0
func (a AnimationOverride) SwipeOutDuration() time.Duration {
	return time.Duration(a.SwipeOutMs) * time.Millisecond
}

// ParseHexColor 解析 #rrggbb 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color must be #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color must be #rrggbb, got %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// DefaultDeck 返回内置的演示卡片堆
// 没有可用的配置文件时使用（例如移动端）
func DefaultDeck() *DeckConfig {
	cfg := &DeckConfig{
		Footer: "Some text",
		Cards: []CardConfig{
			{Name: "Foo"},
			{Name: "Baz"},
			{Name: "Lo"},
			{Name: "Haz"},
		},
	}
	cfg.applyDefaults()
	return cfg
}
