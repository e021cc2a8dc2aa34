package app

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/balloonpop/pkg/render"
)

// EbitenRenderer 在 ebiten 图像上实现 render.Renderer
// 每帧调用 SetTarget 绑定当前屏幕。
type EbitenRenderer struct {
	target  *ebiten.Image
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
	offsetX float64
	offsetY float64
}

// faceKey 字体缓存键
type faceKey struct {
	size float64
	bold bool
}

// NewEbitenRenderer 创建 ebiten 绘制器并加载内置字体
//
// 字体加载失败时退回 ebitenutil 调试文字。
func NewEbitenRenderer() *EbitenRenderer {
	r := &EbitenRenderer{
		faces: make(map[faceKey]*text.GoTextFace),
	}

	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[EbitenRenderer] Warning: Failed to load font: %v", err)
		return r
	}
	r.regular = regular

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("[EbitenRenderer] Warning: Failed to load bold font: %v (using regular)", err)
		bold = regular
	}
	r.bold = bold
	return r
}

// SetTarget 绑定本帧的绘制目标
func (r *EbitenRenderer) SetTarget(screen *ebiten.Image) {
	r.target = screen
}

// Clear 用背景色填充
func (r *EbitenRenderer) Clear() {
	if r.target == nil {
		return
	}
	r.target.Fill(render.BackgroundColor)
}

// FillCircle 绘制抗锯齿实心圆
func (r *EbitenRenderer) FillCircle(x, y, radius float64, c color.Color) {
	if r.target == nil || radius <= 0 {
		return
	}
	vector.FillCircle(
		r.target,
		float32(x+r.offsetX),
		float32(y+r.offsetY),
		float32(radius),
		c,
		true,
	)
}

// Text 绘制文字，y 为基线
func (r *EbitenRenderer) Text(x, y float64, s string, style render.TextStyle) {
	if r.target == nil {
		return
	}

	face := r.face(style.Size, style.Bold)
	if face == nil {
		drawDebugText(r.target, x+r.offsetX, y+r.offsetY, s, style.Align)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+r.offsetX, y+r.offsetY)
	op.ColorScale.ScaleWithColor(style.Color)
	op.SecondaryAlign = text.AlignEnd
	if style.Align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(r.target, s, face, op)
}

// face 返回指定字号和字重的字体，按需创建并缓存
func (r *EbitenRenderer) face(size float64, bold bool) *text.GoTextFace {
	if r.regular == nil {
		return nil
	}
	if size <= 0 {
		size = 20
	}
	key := faceKey{size: size, bold: bold}
	if f, ok := r.faces[key]; ok {
		return f
	}
	source := r.regular
	if bold {
		source = r.bold
	}
	f := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	r.faces[key] = f
	return f
}

// SetOffset 设置屏幕抖动偏移
func (r *EbitenRenderer) SetOffset(dx, dy float64) {
	r.offsetX = dx
	r.offsetY = dy
}

// Size 返回目标图像尺寸
func (r *EbitenRenderer) Size() (float64, float64) {
	if r.target == nil {
		return 0, 0
	}
	bounds := r.target.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

var _ render.Renderer = (*EbitenRenderer)(nil)
