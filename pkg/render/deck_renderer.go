package render

import (
	"errors"
	"fmt"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/swiper"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMissingRenderCard 没有提供卡片绘制函数
var ErrMissingRenderCard = errors.New("render card function is required")

// Options 卡片堆渲染配置
type Options[T any] struct {
	// RenderCard 绘制一张卡片（必需）
	// 返回的图片会按卡片尺寸缩放，同一个索引只调用一次，直到 Invalidate
	RenderCard func(item T, index int) *ebiten.Image

	// LeftLabel 向右拖拽时在卡片左上角淡入的标签，nil 时使用 "Nope"
	LeftLabel *ebiten.Image
	// RightLabel 向左拖拽时在卡片右上角淡入的标签，nil 时使用 "Like"
	RightLabel *ebiten.Image

	// X, Y 卡片静止时左上角的屏幕坐标
	X, Y float64
	// Width, Height 卡片尺寸
	Width, Height float64
}

// DeckRenderer 卡片堆渲染器
//
// 按 StackController 的绘制顺序从后往前绘制：
//   - 下层卡片以卡片中心缩放 ChildScale
//   - 顶层卡片平移 OffsetX 并以中心旋转 Rotation，左右标签随卡片一起变换
type DeckRenderer[T any] struct {
	opts       Options[T]
	leftLabel  *ebiten.Image
	rightLabel *ebiten.Image
	cache      map[int]*ebiten.Image
}

// NewDeckRenderer 创建卡片堆渲染器
//
// 返回：
//   - error: RenderCard 为 nil 时返回 ErrMissingRenderCard；卡片尺寸不是正数时返回错误
func NewDeckRenderer[T any](opts Options[T]) (*DeckRenderer[T], error) {
	if opts.RenderCard == nil {
		return nil, ErrMissingRenderCard
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid card size %.1fx%.1f", opts.Width, opts.Height)
	}

	r := &DeckRenderer[T]{
		opts:       opts,
		leftLabel:  opts.LeftLabel,
		rightLabel: opts.RightLabel,
		cache:      make(map[int]*ebiten.Image),
	}

	if r.leftLabel == nil || r.rightLabel == nil {
		face, err := DefaultFace(config.LabelFontSize)
		if err != nil {
			return nil, err
		}
		if r.leftLabel == nil {
			r.leftLabel = NewTextLabel("Nope", face, NopeColor)
		}
		if r.rightLabel == nil {
			r.rightLabel = NewTextLabel("Like", face, LikeColor)
		}
	}
	return r, nil
}

// Invalidate 清空卡片图片缓存（数据变化后调用）
func (r *DeckRenderer[T]) Invalidate() {
	r.cache = make(map[int]*ebiten.Image)
}

// HitTop 判断屏幕坐标是否落在顶层卡片的静止区域内
func (r *DeckRenderer[T]) HitTop(x, y float64) bool {
	return x >= r.opts.X && x < r.opts.X+r.opts.Width &&
		y >= r.opts.Y && y < r.opts.Y+r.opts.Height
}

// Draw 绘制卡片堆
//
// 参数：
//   - screen: 目标图片
//   - order: 从后往前的绘制顺序（Swiper.DrawOrder）
//   - ch: 当前视觉参数
func (r *DeckRenderer[T]) Draw(screen *ebiten.Image, order []swiper.CardSlot[T], ch swiper.VisualChannels) {
	for _, slot := range order {
		img := r.cardImage(slot)
		if img == nil {
			continue
		}

		switch slot.Role {
		case swiper.SlotBeneath:
			geo := r.cardTransform(ch.ChildScale, 0, 0)
			r.drawCard(screen, img, geo)

		case swiper.SlotTop:
			geo := r.cardTransform(1, ch.RotationRadians(), ch.OffsetX)
			r.drawCard(screen, img, geo)
			r.drawLabel(screen, r.leftLabel, config.LabelPadding, geo, ch.LeftLabelOpacity)
			r.drawLabel(screen, r.rightLabel,
				r.opts.Width-config.LabelPadding-float64(r.rightLabel.Bounds().Dx()), geo, ch.RightLabelOpacity)
		}
	}
}

// cardImage 获取卡片图片，按索引缓存
func (r *DeckRenderer[T]) cardImage(slot swiper.CardSlot[T]) *ebiten.Image {
	if img, ok := r.cache[slot.Index]; ok {
		return img
	}
	img := r.opts.RenderCard(slot.Item, slot.Index)
	r.cache[slot.Index] = img
	return img
}

// cardTransform 计算卡片局部坐标（0,0 到 Width,Height）到屏幕坐标的变换
// 缩放和旋转都以卡片中心为原点
func (r *DeckRenderer[T]) cardTransform(scale, radians, offsetX float64) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(-r.opts.Width/2, -r.opts.Height/2)
	geo.Scale(scale, scale)
	geo.Rotate(radians)
	geo.Translate(r.opts.X+r.opts.Width/2+offsetX, r.opts.Y+r.opts.Height/2)
	return geo
}

func (r *DeckRenderer[T]) drawCard(screen, img *ebiten.Image, card ebiten.GeoM) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.opts.Width/float64(b.Dx()), r.opts.Height/float64(b.Dy()))
	op.GeoM.Concat(card)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *DeckRenderer[T]) drawLabel(screen, label *ebiten.Image, x float64, card ebiten.GeoM, opacity float64) {
	if opacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, config.LabelPadding)
	op.GeoM.Concat(card)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(label, op)
}
