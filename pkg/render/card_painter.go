package render

import (
	"image/color"

	"github.com/decker502/swipedeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CardBorderColor 卡片边框颜色
var CardBorderColor = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

// CardTextColor 卡片文字颜色
var CardTextColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// CardPainter 绘制居中标题和副标题的纯色卡片
type CardPainter struct {
	Width, Height int
	TitleFace     *text.GoTextFace
	SubtitleFace  *text.GoTextFace
}

// Paint 绘制一张卡片
// 副标题按卡片宽度自动换行
func (p *CardPainter) Paint(title, subtitle string, background color.Color) *ebiten.Image {
	img := ebiten.NewImage(p.Width, p.Height)
	img.Fill(background)
	strokeBorder(img, 0, 0, float32(p.Width), float32(p.Height), 1, CardBorderColor)

	cx := float64(p.Width) / 2
	cy := float64(p.Height) / 2

	if p.TitleFace != nil && title != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, cy)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignEnd
		op.ColorScale.ScaleWithColor(CardTextColor)
		text.Draw(img, title, p.TitleFace, op)
	}

	if p.SubtitleFace != nil && subtitle != "" {
		lines := utils.WrapText(subtitle, p.SubtitleFace, float64(p.Width)*0.8)
		lineHeight := p.SubtitleFace.Size * 1.4
		for i, line := range lines {
			op := &text.DrawOptions{}
			op.GeoM.Translate(cx, cy+8+float64(i)*lineHeight)
			op.PrimaryAlign = text.AlignCenter
			op.ColorScale.ScaleWithColor(CardTextColor)
			text.Draw(img, line, p.SubtitleFace, op)
		}
	}
	return img
}

// DrawPlaceholder 在没有卡片时绘制一个虚线框
func DrawPlaceholder(screen *ebiten.Image, x, y, width, height float32) {
	const dash, gap = 12, 8
	clr := CardBorderColor
	for dx := float32(0); dx < width; dx += dash + gap {
		end := min(dx+dash, width)
		vector.StrokeLine(screen, x+dx, y, x+end, y, 2, clr, true)
		vector.StrokeLine(screen, x+dx, y+height, x+end, y+height, 2, clr, true)
	}
	for dy := float32(0); dy < height; dy += dash + gap {
		end := min(dy+dash, height)
		vector.StrokeLine(screen, x, y+dy, x, y+end, 2, clr, true)
		vector.StrokeLine(screen, x+width, y+dy, x+width, y+end, 2, clr, true)
	}
}
