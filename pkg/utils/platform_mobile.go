//go:build mobile

package utils

// IsTouchDevice 移动端编译时始终返回 true
func IsTouchDevice() bool {
	return true
}
