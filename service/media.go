package service

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// MediaReleaser 房间销毁后删除媒体文件
type MediaReleaser interface {
	Release(roomID string, paths []string) error
}

// DirMediaReleaser 按 {Dir}/{roomID}_* 的命名规则清理。
// 消息里记录的路径只有落在 Dir 下且属于该房间时才会删除，Dir 为空时什么都不删。
type DirMediaReleaser struct {
	Dir string
	Log zerolog.Logger
}

func (d DirMediaReleaser) Release(roomID string, paths []string) error {
	if d.Dir == "" || roomID == "" {
		return nil
	}

	seen := make(map[string]struct{}, len(paths))
	targets := make([]string, 0, len(paths))
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		targets = append(targets, p)
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if !InMediaDir(d.Dir, roomID, p) {
			d.Log.Warn().Str("room_id", roomID).Str("path", p).Msg("media path outside room scope, skipped")
			continue
		}
		add(p)
	}
	matches, err := filepath.Glob(filepath.Join(d.Dir, roomID+"_*"))
	if err != nil {
		return err
	}
	for _, p := range matches {
		add(p)
	}

	var errs []error
	for _, p := range targets {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// InMediaDir p 必须直接位于 dir 下，且文件名以 "<roomID>_" 开头
func InMediaDir(dir, roomID, p string) bool {
	if dir == "" || roomID == "" || p == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(p))
	if err != nil || rel == "." || strings.ContainsRune(rel, filepath.Separator) {
		return false
	}
	return strings.HasPrefix(rel, roomID+"_")
}

// MediaPath 媒体文件的落盘路径
func MediaPath(dir, roomID, fileID, ext string) string {
	return filepath.Join(dir, roomID+"_"+fileID+ext)
}
