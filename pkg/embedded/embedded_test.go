package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/difficulty.yaml": {Data: []byte("presets: {}\n")},
		"data/other.yaml":      {Data: []byte("x: 1\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Reset()

	_, err := ReadFile("data/difficulty.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Reset()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "plain", path: "data/difficulty.yaml", want: "presets: {}\n"},
		{name: "dot prefix", path: "./data/other.yaml", want: "x: 1\n"},
		{name: "unknown prefix", path: "assets/x.png", wantErr: true},
		{name: "missing", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q): expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q): got %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Reset()

	if !Exists("data/difficulty.yaml") {
		t.Error("data/difficulty.yaml should exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("data/nope.yaml should not exist")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob: got %d matches, want 2", len(matches))
	}
}

// TestInitData 测试不含 data/ 前缀的文件系统
func TestInitData(t *testing.T) {
	Reset()
	defer Reset()

	InitData(fstest.MapFS{
		"difficulty.yaml": {Data: []byte("presets: {}\n")},
		"other.yaml":      {Data: []byte("x: 1\n")},
	})

	data, err := ReadFile("data/difficulty.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "presets: {}\n" {
		t.Errorf("ReadFile() = %q", data)
	}

	if Exists("data/missing.yaml") {
		t.Error("Exists() = true for missing file")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(matches) != 2 || matches[0] != "data/difficulty.yaml" || matches[1] != "data/other.yaml" {
		t.Errorf("Glob() = %v, want both files under data/", matches)
	}
}
