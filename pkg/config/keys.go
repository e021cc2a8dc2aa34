package config

// 非字符按键在场景输入中对应的 rune
const (
	KeyEscape rune = 0x1b
	KeyEnter  rune = '\r'
)
