// Package data 嵌入游戏数据文件
//
// 根目录之外的命令（终端、SSH、模拟器、移动端）无法引用 main 包，
// 因此数据文件以独立的包提供。FS 中的路径不含 "data/" 前缀，
// 使用 embedded.InitData 初始化。
package data

import "embed"

//go:embed difficulty.yaml
var FS embed.FS
