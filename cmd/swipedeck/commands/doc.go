// Package commands 定义 swipedeck 命令行
//
// 命令
//
//   - swipedeck run       打开卡片堆窗口（不带子命令时的默认行为）
//   - swipedeck validate  检查卡片堆配置文件
//
// 根命令在任何子命令运行前解析 --deck，加载顺序为：
// 指定的文件、嵌入的 data/deck.yaml、内置的演示卡片堆。
package commands
