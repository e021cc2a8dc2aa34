package components

import "image/color"

// BalloonComponent 气球数据
// 半径在创建时确定，之后不再改变
type BalloonComponent struct {
	Radius float64    // 半径，[10, 40)
	Color  color.RGBA // 填充颜色，不透明
}
