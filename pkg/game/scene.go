package game

import "github.com/gonewx/balloonpop/pkg/render"

// Scene 游戏场景（菜单、对局）
// 每个场景拥有独立的更新、绘制和输入处理逻辑
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上次更新的秒数
	Update(deltaTime float64)

	// Draw 通过 Renderer 绘制场景
	Draw(r render.Renderer)

	// HandleClick 处理游戏区域坐标系下的点击
	HandleClick(x, y float64)

	// HandleKey 处理按键，key 为小写字符
	HandleKey(key rune)
}

// Resizable 是一个可选接口，用于在视口尺寸变化时通知场景
type Resizable interface {
	Resize(width, height float64)
}
