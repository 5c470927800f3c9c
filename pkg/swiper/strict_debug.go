//go:build swiperdebug

package swiper

// strictChecks 调试构建（-tags swiperdebug）：非法状态直接 panic
const strictChecks = true
