package service

import (
	"os"
	"path/filepath"
	"testing"
)

func touchFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", path, err)
	}
	return err == nil
}

func TestDirMediaReleaser_Release(t *testing.T) {
	dir := t.TempDir()
	a := MediaPath(dir, "room1", "f1", ".jpg")
	b := MediaPath(dir, "room1", "f2", ".mp4")
	keep := MediaPath(dir, "room2", "f3", ".jpg")
	elsewhere := filepath.Join(t.TempDir(), "room1_x.pdf")
	for _, p := range []string{a, b, keep, elsewhere} {
		touchFile(t, p)
	}

	// 记录的路径 + 前缀匹配，重复和不存在的路径都不报错
	recorded := []string{a, a, elsewhere, keep, filepath.Join(dir, "sub", "..", "..", filepath.Base(elsewhere)), MediaPath(dir, "room1", "gone", ".jpg")}
	if err := (DirMediaReleaser{Dir: dir}).Release("room1", recorded); err != nil {
		t.Fatalf("Release: %v", err)
	}
	for _, p := range []string{a, b} {
		if exists(t, p) {
			t.Fatalf("%s should be removed", p)
		}
	}
	if !exists(t, keep) {
		t.Fatal("other room media should be kept")
	}
	if !exists(t, elsewhere) {
		t.Fatal("file outside the media dir should be kept")
	}
}

func TestDirMediaReleaser_NoDir(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "room1_f1.jpg")
	touchFile(t, p)

	if err := (DirMediaReleaser{}).Release("room1", []string{p}); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if !exists(t, p) {
		t.Fatal("without Dir nothing is removed")
	}
}

func TestInMediaDir(t *testing.T) {
	dir := filepath.Join("/data", "media")
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"own file", filepath.Join(dir, "room1_a.jpg"), true},
		{"unclean but inside", filepath.Join(dir, ".", "room1_a.jpg"), true},
		{"other room", filepath.Join(dir, "room2_a.jpg"), false},
		{"prefix without separator", filepath.Join(dir, "room10_a.jpg"), false},
		{"nested dir", filepath.Join(dir, "room1_x", "a.jpg"), false},
		{"parent escape", filepath.Join(dir, "..", "room1_a.jpg"), false},
		{"absolute elsewhere", "/etc/passwd", false},
		{"dir itself", dir, false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InMediaDir(dir, "room1", tt.path); got != tt.want {
				t.Fatalf("InMediaDir(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMediaPath(t *testing.T) {
	got := MediaPath("/data", "abcd1234", "file", ".png")
	if got != filepath.Join("/data", "abcd1234_file.png") {
		t.Fatalf("got %q", got)
	}
}
