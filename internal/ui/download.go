// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pdiddy/imgpdf/pkg/types"
)

// Handle references a saved artifact.
type Handle struct {
	// Path is the local file holding the artifact.
	Path string
	// URL is a file:// link to Path.
	URL string
	// owned marks session temp files that Release removes.
	owned bool
}

// Downloads holds at most one live artifact handle. Installing a new
// artifact releases the previous one, so repeated attempts never
// accumulate session files.
type Downloads struct {
	target  string
	tempDir string

	current *Handle
	visible bool
}

// NewDownloads writes artifacts to target, or to fresh session-owned files
// under tempDir when target is empty. An empty tempDir means os.TempDir().
func NewDownloads(target, tempDir string) *Downloads {
	return &Downloads{target: target, tempDir: tempDir}
}

// Current returns the live handle and whether the download surface is visible.
func (d *Downloads) Current() (Handle, bool) {
	if d.current == nil {
		return Handle{}, d.visible
	}
	return *d.current, d.visible
}

// Install saves art, releases the previous handle and makes the download
// surface visible. On error the previous handle stays live.
func (d *Downloads) Install(art *types.Artifact) (Handle, error) {
	path, owned := d.target, false
	if path == "" {
		dir := d.tempDir
		if dir == "" {
			dir = os.TempDir()
		}
		path = filepath.Join(dir, "imgpdf-"+uuid.NewString()+"-"+art.Filename)
		owned = true
	}

	if err := writeAtomic(path, art.Data); err != nil {
		return Handle{}, err
	}
	if err := d.Release(); err != nil {
		if owned {
			os.Remove(path)
		}
		return Handle{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	d.current = &Handle{
		Path:  abs,
		URL:   (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		owned: owned,
	}
	d.visible = true
	return *d.current, nil
}

// Release drops the live handle, deleting its file when the session owns
// it. Visibility is left unchanged.
func (d *Downloads) Release() error {
	h := d.current
	if h == nil {
		return nil
	}
	if h.owned {
		if err := os.Remove(h.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("releasing %s: %w", h.Path, err)
		}
	}
	d.current = nil
	return nil
}

// writeAtomic writes data to a temporary file next to dest and renames it
// into place.
func writeAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".imgpdf-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing artifact: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
