//go:build !mobile

package utils

import "testing"

func TestIsTouchDevice_Desktop(t *testing.T) {
	t.Setenv(TouchEmulateEnv, "")
	if IsTouchDevice() {
		t.Error("IsTouchDevice() should return false on desktop")
	}

	t.Setenv(TouchEmulateEnv, "1")
	if !IsTouchDevice() {
		t.Errorf("IsTouchDevice() should return true when %s=1", TouchEmulateEnv)
	}
}
