// Package terminal 在 ANSI 终端上运行游戏
//
// 画面使用半块字符（▀）和 24 位颜色绘制，每个字符单元显示上下两个像素；
// 输入来自原始模式下的键盘字节和 SGR 鼠标报告。读写端只依赖 io.Reader
// 和 io.Writer，因此同一套循环既服务本地终端，也服务 SSH 会话。
package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ANSI 控制序列
const (
	seqClearScreen  = "\033[H\033[2J"
	seqHideCursor   = "\033[?25l"
	seqShowCursor   = "\033[?25h"
	seqResetStyle   = "\033[0m"
	seqMouseOn      = "\033[?1000h\033[?1006h" // 按键报告 + SGR 扩展坐标
	seqMouseOff     = "\033[?1006l\033[?1000l"
	seqAltScreenOn  = "\033[?1049h"
	seqAltScreenOff = "\033[?1049l"
)

// TermSizeFunc 返回终端的列数和行数
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc 读取本地标准输出的终端尺寸
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// enterScreen 切换到备用屏幕，隐藏光标并开启鼠标报告
func enterScreen(w io.Writer) error {
	_, err := io.WriteString(w, seqAltScreenOn+seqHideCursor+seqMouseOn+seqClearScreen)
	return err
}

// leaveScreen 恢复终端状态
func leaveScreen(w io.Writer) {
	fmt.Fprint(w, seqResetStyle+seqMouseOff+seqShowCursor+seqAltScreenOff)
}

// MakeRaw 把本地终端切换为原始模式，返回恢复函数
func MakeRaw(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	return func() {
		_ = term.Restore(fd, oldState)
	}, nil
}

// IsTerminal 判断文件是否连接到终端
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SizeTracker 记录远程终端尺寸，供 SSH 会话在窗口变化时更新
type SizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

// NewSizeTracker 创建尺寸记录器
func NewSizeTracker(width, height int) *SizeTracker {
	return &SizeTracker{width: width, height: height}
}

// Update 记录新的终端尺寸
func (s *SizeTracker) Update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

// Size 返回最近一次记录的尺寸，满足 TermSizeFunc
func (s *SizeTracker) Size() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ TermSizeFunc = (*SizeTracker)(nil).Size
