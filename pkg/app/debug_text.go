package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/balloonpop/pkg/render"
)

// 调试字体字形尺寸
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// drawDebugText 使用 ebitenutil 的内置位图字体绘制文字
func drawDebugText(target *ebiten.Image, x, y float64, s string, align render.Align) {
	if align == render.AlignCenter {
		x -= float64(len(s)*debugGlyphWidth) / 2
	}
	ebitenutil.DebugPrintAt(target, s, int(x), int(y)-debugGlyphHeight)
}
