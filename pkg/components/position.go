package components

// PositionComponent 实体在游戏区域中的位置（中心点）
// 坐标系与点击坐标一致：原点在左上角，Y 轴向下
type PositionComponent struct {
	X float64
	Y float64
}
