package app

import (
	"testing"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyToRune(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		want   rune
		wantOK bool
	}{
		{ebiten.KeyDigit1, '1', true},
		{ebiten.KeyDigit3, '3', true},
		{ebiten.KeyH, 'h', true},
		{ebiten.KeyEscape, config.KeyEscape, true},
		{ebiten.KeyEnter, config.KeyEnter, true},
		{ebiten.KeyZ, 0, false},
	}

	for _, tt := range tests {
		got, ok := KeyToRune(tt.key)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("KeyToRune(%v) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}
