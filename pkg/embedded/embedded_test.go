package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/fling.yaml":         {Data: []byte("physics:\n  friction: 0.94\n")},
		"data/presets/fast.yaml":  {Data: []byte("physics:\n  friction: 0.98\n")},
		"data/presets/heavy.yaml": {Data: []byte("physics:\n  friction: 0.85\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
}

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := ReadFile("data/fling.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if _, err := Open("data/fling.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/fling.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFile 测试读取文件和路径标准化
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/fling.yaml", false},
		{"./ 前缀", "./data/fling.yaml", false},
		{"未知前缀", "assets/fling.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}
}

// TestExistsAndGlob 测试存在检查和匹配
func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/fling.yaml") {
		t.Error("data/fling.yaml should exist")
	}
	if Exists("data/other.yaml") {
		t.Error("data/other.yaml should not exist")
	}

	matches, err := Glob("data/presets/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob matched %v, want 2 files", matches)
	}

	if _, err := Glob("assets/*"); err == nil {
		t.Error("Glob with unknown prefix should fail")
	}
}
