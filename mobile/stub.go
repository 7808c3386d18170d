//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 绑定代码在 mobile.go 和 embed.go 中，仅在 -tags mobile 时编译；
// 此文件让 go build ./... 在桌面端也能通过。
package mobile

// Dummy 与移动端构建导出相同的符号
func Dummy() {}
