package app

import (
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 同时支持鼠标和触摸，优先检测触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// keyRunes 需要转发给场景的按键
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyDigit1: '1',
	ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3',
	ebiten.KeyE:      'e',
	ebiten.KeyM:      'm',
	ebiten.KeyH:      'h',
	ebiten.KeyR:      'r',
	ebiten.KeyQ:      'q',
	ebiten.KeyEscape: config.KeyEscape,
	ebiten.KeyEnter:  config.KeyEnter,
	ebiten.KeySpace:  ' ',

	// 方向键映射为菜单的上下选择键
	ebiten.KeyArrowUp:   'k',
	ebiten.KeyArrowDown: 'j',
}

// JustPressedKeys 返回本帧刚按下的按键，转换为场景使用的 rune
func JustPressedKeys() []rune {
	var result []rune
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if r, ok := KeyToRune(key); ok {
			result = append(result, r)
		}
	}
	return result
}

// KeyToRune 把 ebiten 按键转换为 rune
func KeyToRune(key ebiten.Key) (rune, bool) {
	r, ok := keyRunes[key]
	return r, ok
}
