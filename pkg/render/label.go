package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 默认标签样式
const (
	labelBorderWidth = 2
	labelInnerPad    = 5
)

var (
	// NopeColor 默认左侧标签颜色
	NopeColor = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
	// LikeColor 默认右侧标签颜色
	LikeColor = color.RGBA{R: 0x20, G: 0xb0, B: 0x50, A: 0xff}
)

// NewTextLabel 创建带边框的文字标签图片
//
// 参数：
//   - label: 标签文字
//   - face: 字体
//   - clr: 边框和文字颜色
func NewTextLabel(label string, face *text.GoTextFace, clr color.Color) *ebiten.Image {
	tw, th := text.Measure(label, face, 0)
	w := int(math.Ceil(tw)) + 2*(labelInnerPad+labelBorderWidth)
	h := int(math.Ceil(th)) + 2*(labelInnerPad+labelBorderWidth)
	img := ebiten.NewImage(w, h)

	strokeBorder(img, 0, 0, float32(w), float32(h), labelBorderWidth, clr)

	op := &text.DrawOptions{}
	op.GeoM.Translate(labelInnerPad+labelBorderWidth, labelInnerPad+labelBorderWidth)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, label, face, op)
	return img
}

// strokeBorder 绘制矩形边框
func strokeBorder(dst *ebiten.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	half := strokeWidth / 2
	vector.StrokeLine(dst, x, y+half, x+width, y+half, strokeWidth, clr, true)
	vector.StrokeLine(dst, x, y+height-half, x+width, y+height-half, strokeWidth, clr, true)
	vector.StrokeLine(dst, x+half, y, x+half, y+height, strokeWidth, clr, true)
	vector.StrokeLine(dst, x+width-half, y, x+width-half, y+height, strokeWidth, clr, true)
}
