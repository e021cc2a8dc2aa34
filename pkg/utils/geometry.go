// Package utils 提供通用工具函数
package utils

import "math"

// Distance 返回两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// PointInCircle 判断点是否在圆内（含边界）
//
// 使用平方距离比较，避免开方。
//
// 参数：
//   - px, py: 点坐标
//   - cx, cy: 圆心坐标
//   - radius: 半径
func PointInCircle(px, py, cx, cy, radius float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= radius*radius
}

// PointInRect 判断点是否在轴对齐矩形内（含左上边界，不含右下边界）
func PointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px < x+width && py >= y && py < y+height
}
