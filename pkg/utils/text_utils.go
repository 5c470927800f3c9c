package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 参数：
//   - s: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回：
//   - []string: 换行后的各行文本，至少包含一行
//
// 优先在空格处断行；单个单词超过最大宽度时按字符强制断行。
func WrapText(s string, face *text.GoTextFace, maxWidth float64) []string {
	if s == "" || face == nil || maxWidth <= 0 || MeasureTextWidth(s, face) <= maxWidth {
		return []string{s}
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if MeasureTextWidth(candidate, face) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = ""

		// 单词本身超宽
		for MeasureTextWidth(word, face) > maxWidth {
			head, rest := splitRunes(word, face, maxWidth)
			lines = append(lines, head)
			word = rest
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{s}
	}
	return lines
}

// splitRunes 切出能放进 maxWidth 的最长前缀（至少一个字符）
func splitRunes(word string, face *text.GoTextFace, maxWidth float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && MeasureTextWidth(string(runes[:n+1]), face) <= maxWidth {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(s string, face *text.GoTextFace) float64 {
	if s == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(s, face, 0)
	return width
}
