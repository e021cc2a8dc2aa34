package render

import (
	"fmt"
	"image/color"
)

// CommandKind 绘制命令类型
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdCircle
	CmdText
)

// Command 一条已记录的绘制命令，坐标已叠加偏移
type Command struct {
	Kind   CommandKind
	X, Y   float64
	Radius float64
	Text   string
	Style  TextStyle
	Color  color.Color
}

// String 返回便于调试的命令描述
func (c Command) String() string {
	switch c.Kind {
	case CmdClear:
		return "clear"
	case CmdCircle:
		return fmt.Sprintf("circle(%.2f, %.2f, r=%.2f)", c.X, c.Y, c.Radius)
	case CmdText:
		return fmt.Sprintf("text(%.2f, %.2f, %q)", c.X, c.Y, c.Text)
	default:
		return "unknown"
	}
}

// Recorder 把绘制命令记录到内存中的 Renderer
// 用于无头运行和测试
type Recorder struct {
	Width, Height float64
	Commands      []Command

	offsetX, offsetY float64
}

// NewRecorder 创建指定尺寸的记录器
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Clear 记录清屏，并丢弃之前的命令
func (r *Recorder) Clear() {
	r.Commands = append(r.Commands[:0], Command{Kind: CmdClear})
}

// FillCircle 记录实心圆
func (r *Recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.Commands = append(r.Commands, Command{
		Kind:   CmdCircle,
		X:      x + r.offsetX,
		Y:      y + r.offsetY,
		Radius: radius,
		Color:  c,
	})
}

// Text 记录文字
func (r *Recorder) Text(x, y float64, s string, style TextStyle) {
	r.Commands = append(r.Commands, Command{
		Kind:  CmdText,
		X:     x + r.offsetX,
		Y:     y + r.offsetY,
		Text:  s,
		Style: style,
		Color: style.Color,
	})
}

// SetOffset 设置偏移
func (r *Recorder) SetOffset(dx, dy float64) {
	r.offsetX = dx
	r.offsetY = dy
}

// Size 返回记录器尺寸
func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

// Circles 返回所有圆形命令
func (r *Recorder) Circles() []Command {
	return r.filter(CmdCircle)
}

// Texts 返回所有文字内容，按绘制顺序
func (r *Recorder) Texts() []string {
	var texts []string
	for _, cmd := range r.filter(CmdText) {
		texts = append(texts, cmd.Text)
	}
	return texts
}

func (r *Recorder) filter(kind CommandKind) []Command {
	var result []Command
	for _, cmd := range r.Commands {
		if cmd.Kind == kind {
			result = append(result, cmd)
		}
	}
	return result
}
