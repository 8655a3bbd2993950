// Package library walks a media directory tree and finds sports video files.
package library

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sportarr/sportarr/pkg/logger"
)

// EventFile is one video file found in the library. The top-level directory
// it sits under is taken as the series (league) name.
type EventFile struct {
	Name         string
	RelativePath string
	AbsolutePath string
	SeriesName   string
	Size         int64
}

// Library scans a root directory for event files.
type Library struct {
	fs   fs.FS
	root string
}

// New creates a library rooted at dir on the local filesystem.
func New(dir string) *Library {
	return &Library{
		fs:   os.DirFS(dir),
		root: dir,
	}
}

// NewWithFS creates a library over an arbitrary filesystem. Absolute paths
// are joined against root.
func NewWithFS(fsys fs.FS, root string) *Library {
	return &Library{
		fs:   fsys,
		root: root,
	}
}

// FindEvents walks the library and returns every video file, tagging each
// with the series directory it lives under. Files at the root have no series.
func (l *Library) FindEvents(ctx context.Context) ([]EventFile, error) {
	log := logger.FromCtx(ctx)

	var files []EventFile
	err := fs.WalkDir(l.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != "." {
				return fs.SkipDir
			}
			return nil
		}

		if !isVideoFile(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		f := EventFile{
			Name:         d.Name(),
			RelativePath: p,
			AbsolutePath: filepath.Join(l.root, filepath.FromSlash(p)),
			SeriesName:   seriesFromPath(p),
			Size:         info.Size(),
		}
		log.Debugw("found event file", "path", p, "series", f.SeriesName, "size", humanize.Bytes(uint64(f.Size)))
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// seriesFromPath takes the first path element as the series name.
func seriesFromPath(p string) string {
	dir := path.Dir(p)
	if dir == "." {
		return ""
	}
	parts := strings.Split(dir, "/")
	return parts[0]
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mkv":  {},
	".m4v":  {},
	".iso":  {},
	".ts":   {},
	".m2ts": {},
	".mov":  {},
	".wmv":  {},
	".mpg":  {},
	".mpeg": {},
}

func isVideoFile(name string) bool {
	_, ok := videoExtensions[strings.ToLower(path.Ext(name))]
	return ok
}
