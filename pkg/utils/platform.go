//go:build !mobile

package utils

import "os"

// TouchEmulateEnv 设为 1 时桌面端按触摸设备处理（用于本地调试悬停开关）
const TouchEmulateEnv = "FLING_TOUCH_EMULATE"

// IsTouchDevice 当前设备是否只有触摸输入（无悬停、无精确指针）
// 桌面端编译时默认返回 false
func IsTouchDevice() bool {
	return os.Getenv(TouchEmulateEnv) == "1"
}
