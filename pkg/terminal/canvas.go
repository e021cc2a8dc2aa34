package terminal

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gonewx/balloonpop/pkg/render"
)

// 半块字符：前景色为上半像素，背景色为下半像素
const blockUpperHalf = '▀'

// maxChunkSize 单次写入的最大字节数，接近常见 MTU，SSH 传输更平滑
const maxChunkSize = 1400

// cell 一个终端字符单元
type cell struct {
	ch   rune
	fg   color.RGBA
	bg   color.RGBA
	bold bool
}

// textItem 叠加在像素之上的一段文字
type textItem struct {
	col, row int // 0-based
	s        string
	fg       color.RGBA
	bold     bool
}

// Canvas 终端画布，实现 render.Renderer
//
// 游戏使用固定的逻辑分辨率，画布把逻辑坐标缩放到 termWidth × termHeight*2
// 个像素。Render 只输出与上一帧不同的字符单元。
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int // termHeight * 2
	pixels         []color.RGBA

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	offsetX float64
	offsetY float64

	texts []textItem

	cells     []cell
	prevCells []cell
	fullDraw  bool

	out    strings.Builder
	numBuf [20]byte
}

// NewCanvas 创建把逻辑坐标缩放到指定终端尺寸的画布
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize 更新终端尺寸，逻辑尺寸保持不变；尺寸变化后下一帧整屏重绘
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]color.RGBA, c.subPixelHeight*termWidth)
		c.cells = make([]cell, termWidth*termHeight)
		c.prevCells = make([]cell, termWidth*termHeight)
		c.fullDraw = true
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// TerminalWidth 返回终端列数
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight 返回终端行数
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear 用背景色填充并清除文字
func (c *Canvas) Clear() {
	bg := toRGBA(render.BackgroundColor)
	for i := range c.pixels {
		c.pixels[i] = bg
	}
	c.texts = c.texts[:0]
}

// FillCircle 填充像素中心落在圆内的像素
// 圆小于一个像素时至少点亮圆心所在像素
func (c *Canvas) FillCircle(x, y, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	x += c.offsetX
	y += c.offsetY
	rgba := toRGBA(col)

	minPX := int(math.Floor((x - radius) * c.scaleX))
	maxPX := int(math.Ceil((x + radius) * c.scaleX))
	minPY := int(math.Floor((y - radius) * c.scaleY))
	maxPY := int(math.Ceil((y + radius) * c.scaleY))

	r2 := radius * radius
	filled := false
	for py := minPY; py <= maxPY; py++ {
		ly := (float64(py) + 0.5) / c.scaleY
		for px := minPX; px <= maxPX; px++ {
			lx := (float64(px) + 0.5) / c.scaleX
			dx, dy := lx-x, ly-y
			if dx*dx+dy*dy <= r2 {
				c.setPixel(px, py, rgba)
				filled = true
			}
		}
	}
	if !filled {
		c.setPixel(int(math.Floor(x*c.scaleX)), int(math.Floor(y*c.scaleY)), rgba)
	}
}

func (c *Canvas) setPixel(px, py int, col color.RGBA) {
	if px >= 0 && px < c.termWidth && py >= 0 && py < c.subPixelHeight {
		c.pixels[py*c.termWidth+px] = col
	}
}

// Text 把文字放到基线上方半个字号处所在的行
func (c *Canvas) Text(x, y float64, s string, style render.TextStyle) {
	size := style.Size
	if size <= 0 {
		size = 20
	}
	col := int(math.Floor((x + c.offsetX) * c.scaleX))
	row := int(math.Floor((y + c.offsetY - size/2) * c.scaleY / 2))
	if style.Align == render.AlignCenter {
		col -= utf8.RuneCountInString(s) / 2
	}
	if col < 0 {
		col = 0
	}
	c.texts = append(c.texts, textItem{
		col:  col,
		row:  row,
		s:    s,
		fg:   toRGBA(style.Color),
		bold: style.Bold,
	})
}

// SetOffset 设置全局绘制偏移（逻辑坐标）
func (c *Canvas) SetOffset(dx, dy float64) {
	c.offsetX = dx
	c.offsetY = dy
}

// Size 返回逻辑尺寸
func (c *Canvas) Size() (float64, float64) {
	return c.logicalWidth, c.logicalHeight
}

// TerminalToLogical 把 1-based 终端坐标（鼠标报告）换算为逻辑坐标
// 取字符单元的中心
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	x = (float64(col-1) + 0.5) / c.scaleX
	y = (float64(row-1)*2 + 1) / c.scaleY
	return x, y
}

// compose 把像素和文字合成为字符单元
func (c *Canvas) compose() {
	for row := 0; row < c.termHeight; row++ {
		top := row * 2 * c.termWidth
		bottom := top + c.termWidth
		for col := 0; col < c.termWidth; col++ {
			c.cells[row*c.termWidth+col] = cell{
				ch: blockUpperHalf,
				fg: c.pixels[top+col],
				bg: c.pixels[bottom+col],
			}
		}
	}

	for _, t := range c.texts {
		if t.row < 0 || t.row >= c.termHeight {
			continue
		}
		col := t.col
		for _, r := range t.s {
			if col >= c.termWidth {
				break
			}
			i := t.row*c.termWidth + col
			c.cells[i] = cell{ch: r, fg: t.fg, bg: c.cells[i].bg, bold: t.bold}
			col++
		}
	}
}

// Render 输出与上一帧不同的字符单元
func (c *Canvas) Render(w io.Writer) error {
	c.compose()
	c.out.Reset()

	var last *cell
	cursorRow, cursorCol := -1, -1
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			i := row*c.termWidth + col
			cur := &c.cells[i]
			if !c.fullDraw && *cur == c.prevCells[i] {
				continue
			}
			if row != cursorRow || col != cursorCol {
				c.moveCursor(col+1, row+1)
			}
			if last == nil || last.fg != cur.fg || last.bg != cur.bg || last.bold != cur.bold {
				c.writeStyle(cur)
			}
			c.out.WriteRune(cur.ch)
			last = cur
			cursorRow, cursorCol = row, col+1
		}
	}
	if last != nil {
		c.out.WriteString(seqResetStyle)
	}

	copy(c.prevCells, c.cells)
	c.fullDraw = false
	return writeChunks(w, c.out.String())
}

// Invalidate 下一帧整屏重绘
func (c *Canvas) Invalidate() {
	c.fullDraw = true
}

func (c *Canvas) moveCursor(col, row int) {
	c.out.WriteString("\033[")
	c.out.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.out.WriteByte(';')
	c.out.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.out.WriteByte('H')
}

func (c *Canvas) writeStyle(cl *cell) {
	c.out.WriteString("\033[0")
	if cl.bold {
		c.out.WriteString(";1")
	}
	c.out.WriteString(";38;2;")
	c.writeRGB(cl.fg)
	c.out.WriteString(";48;2;")
	c.writeRGB(cl.bg)
	c.out.WriteByte('m')
}

func (c *Canvas) writeRGB(col color.RGBA) {
	c.out.Write(strconv.AppendInt(c.numBuf[:0], int64(col.R), 10))
	c.out.WriteByte(';')
	c.out.Write(strconv.AppendInt(c.numBuf[:0], int64(col.G), 10))
	c.out.WriteByte(';')
	c.out.Write(strconv.AppendInt(c.numBuf[:0], int64(col.B), 10))
}

// writeChunks 分块写出
func writeChunks(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// toRGBA 转为不透明 RGBA，终端不做 alpha 混合
func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xFF}
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	rgba.A = 0xFF
	return rgba
}

var _ render.Renderer = (*Canvas)(nil)
