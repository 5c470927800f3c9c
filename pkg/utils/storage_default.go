//go:build !android

package utils

// PrepareStorage 非 Android 平台的空实现
// gdata 在桌面端会自动创建存储目录
func PrepareStorage(appName string) (string, error) {
	return "", nil
}
