// Package render 使用 Ebitengine 绘制卡片堆
package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultFaceSource *text.GoTextFaceSource
	defaultFaceCache  = map[float64]*text.GoTextFace{}
)

// DefaultFace 返回内置 Go Regular 字体的指定字号
// 同一字号只创建一次
func DefaultFace(size float64) (*text.GoTextFace, error) {
	if face, ok := defaultFaceCache[size]; ok {
		return face, nil
	}

	if defaultFaceSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		defaultFaceSource = source
	}

	face := &text.GoTextFace{
		Source:    defaultFaceSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	defaultFaceCache[size] = face
	return face, nil
}
