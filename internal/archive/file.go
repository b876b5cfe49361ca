package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const createAttempts = 3

type FileArchiver struct {
	dir string
	now func() time.Time
}

func NewFileArchiver(dir string) *FileArchiver {
	return &FileArchiver{dir: dir, now: time.Now}
}

func (a *FileArchiver) Archive(ctx context.Context, raw []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}

	content := prettyJSON(raw)
	for attempt := 0; attempt < createAttempts; attempt++ {
		path := filepath.Join(a.dir, NewName(a.now()))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create archive file: %w", err)
		}
		if _, err := f.Write(content); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write archive file: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close archive file: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("could not pick a unique archive name after %d attempts", createAttempts)
}

func (a *FileArchiver) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read archive directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && IsArchiveName(e.Name()) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
