//go:build !android

package utils

// PrepareSaveDir 在打开 gdata 之前准备存档目录
// 非 Android 平台由 gdata 自行创建目录
func PrepareSaveDir() error {
	return nil
}
