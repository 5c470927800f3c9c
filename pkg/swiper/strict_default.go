//go:build !swiperdebug

package swiper

// strictChecks 生产构建：非法状态只记录日志并返回错误
const strictChecks = false
