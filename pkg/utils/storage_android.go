//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PrepareStorage 在 gdata 初始化前确保 Android 存储目录存在并可写
//
// gdata 在 Android 上使用 /data/data/{package}/ 作为根目录，但不会预先创建子目录。
//
// 参数：
//   - appName: gdata 使用的应用名，作为子目录名
//
// 返回：
//   - string: 存储目录
//   - error: 无法检测包名、创建目录失败或目录不可写
func PrepareStorage(appName string) (string, error) {
	pkg, err := androidPackage()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, ".writable")
	if err != nil {
		return "", fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	f.Close()
	os.Remove(f.Name())
	return dir, nil
}

// androidPackage 从 /proc/self/cmdline 读取应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name, _, _ := bytes.Cut(data, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return "", errors.New("empty /proc/self/cmdline")
	}
	return string(name), nil
}
