// Package render 定义与具体图形后端无关的绘制接口
//
// 游戏逻辑只通过 Renderer 发出绘制命令；ebiten、终端画布和测试记录器
// 分别实现该接口。
package render

import "image/color"

// Align 文字水平对齐方式
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle 文字样式
type TextStyle struct {
	Size  float64 // 字号（逻辑像素）
	Bold  bool
	Align Align
	Color color.Color
}

// BackgroundColor 画面背景色
var BackgroundColor = color.RGBA{R: 0xF0, G: 0xF8, B: 0xFF, A: 0xFF}

// Renderer 绘制目标
// 坐标均为游戏区域逻辑坐标，SetOffset 设置的偏移会叠加到后续所有绘制命令上。
type Renderer interface {
	// Clear 清空画面
	Clear()
	// FillCircle 绘制实心圆
	FillCircle(x, y, radius float64, c color.Color)
	// Text 绘制单行文字，y 为基线位置
	Text(x, y float64, s string, style TextStyle)
	// SetOffset 设置全局绘制偏移（屏幕抖动）
	SetOffset(dx, dy float64)
	// Size 返回绘制区域的逻辑尺寸
	Size() (width, height float64)
}
