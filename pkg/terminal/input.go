package terminal

import (
	"bytes"
	"io"
	"strconv"

	"github.com/gonewx/balloonpop/pkg/config"
)

// KeyInterrupt 原始模式下 Ctrl+C 产生的字节
const KeyInterrupt rune = 0x03

// EventKind 输入事件类型
type EventKind int

const (
	EventKey EventKind = iota
	EventClick
)

// Event 一个输入事件
type Event struct {
	Kind EventKind
	Key  rune // EventKey
	Col  int  // EventClick，1-based
	Row  int  // EventClick，1-based
}

// Parser 把终端输入字节解析为事件
//
// 转义序列可能跨越多次读取，不完整的部分保留到下一次 Feed。
type Parser struct {
	pending []byte
}

// Feed 解析一段输入，返回其中完整的事件
func (p *Parser) Feed(data []byte) []Event {
	buf := append(p.pending, data...)
	p.pending = nil

	var events []Event
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 0x1b:
			if i+1 >= len(buf) {
				p.pending = append(p.pending, buf[i:]...)
				return events
			}
			if buf[i+1] != '[' {
				events = append(events, Event{Kind: EventKey, Key: config.KeyEscape})
				continue
			}
			// CSI 以 0x40..0x7e 范围内的字节结束
			end := i + 2
			for end < len(buf) && (buf[end] < 0x40 || buf[end] > 0x7e) {
				end++
			}
			if end >= len(buf) {
				p.pending = append(p.pending, buf[i:]...)
				return events
			}
			if ev, ok := parseCSI(buf[i+2:end], buf[end]); ok {
				events = append(events, ev)
			}
			i = end
		case b == '\r' || b == '\n':
			events = append(events, Event{Kind: EventKey, Key: config.KeyEnter})
		case rune(b) == KeyInterrupt:
			events = append(events, Event{Kind: EventKey, Key: KeyInterrupt})
		case b >= 0x20 && b < 0x7f:
			events = append(events, Event{Kind: EventKey, Key: rune(b)})
		}
	}
	return events
}

// Flush 把单独挂起的 Esc 作为按键输出
// 在一帧内没有新输入时调用
func (p *Parser) Flush() []Event {
	if len(p.pending) == 1 && p.pending[0] == 0x1b {
		p.pending = nil
		return []Event{{Kind: EventKey, Key: config.KeyEscape}}
	}
	return nil
}

// parseCSI 解析 SGR 鼠标报告和方向键
//
// SGR 鼠标格式：ESC [ < button ; col ; row M（按下）或 m（释放）。
// 只有左键按下会产生点击事件。方向键映射为菜单的上下选择键。
func parseCSI(params []byte, final byte) (Event, bool) {
	if len(params) > 0 && params[0] == '<' {
		if final != 'M' {
			return Event{}, false
		}
		fields := bytes.Split(params[1:], []byte{';'})
		if len(fields) != 3 {
			return Event{}, false
		}
		button, err1 := strconv.Atoi(string(fields[0]))
		col, err2 := strconv.Atoi(string(fields[1]))
		row, err3 := strconv.Atoi(string(fields[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return Event{}, false
		}
		// 低两位为按键编号，32 表示移动，64 表示滚轮
		if button&3 != 0 || button&(32|64) != 0 {
			return Event{}, false
		}
		return Event{Kind: EventClick, Col: col, Row: row}, true
	}

	switch final {
	case 'A':
		return Event{Kind: EventKey, Key: 'k'}, true
	case 'B':
		return Event{Kind: EventKey, Key: 'j'}, true
	}
	return Event{}, false
}

// Stream 在后台 goroutine 中读取输入，通过通道交给游戏循环
type Stream struct {
	ch   chan []byte
	done chan struct{}
}

// StartStream 启动读取 goroutine；读取出错（包括 EOF）时关闭通道
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:   make(chan []byte, 64),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				select {
				case s.ch <- chunk:
				case <-s.done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// Drain 非阻塞地取出所有已读取的数据
// 通道关闭后 open 为 false
func (s *Stream) Drain() (data []byte, open bool) {
	for {
		select {
		case chunk, ok := <-s.ch:
			if !ok {
				return data, false
			}
			data = append(data, chunk...)
		default:
			return data, true
		}
	}
}

// Close 通知读取 goroutine 停止投递
// 阻塞在 Read 上的 goroutine 会在下一次读取返回后退出
func (s *Stream) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}
