// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selection builds the ordered set of image files for an attempt.
package selection

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/imgpdf/pkg/types"
)

// maxConcurrentReads caps open file handles while loading a selection.
const maxConcurrentReads = 8

// FromPaths reads each path and returns the files in argument order. No
// type or size checks are made. Any read failure aborts the whole
// selection. An empty path list yields an empty Selection and no error.
func FromPaths(ctx context.Context, paths []string) (types.Selection, error) {
	sel := make(types.Selection, len(paths))
	if len(paths) == 0 {
		return sel, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, p := range paths {
		i, p := i, p // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := readFile(p)
			if err != nil {
				return err
			}
			sel[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sel, nil
}

// ParseLine splits one line of session input into paths. Fields are
// whitespace separated; a blank line yields no paths.
func ParseLine(line string) []string {
	return strings.Fields(line)
}

func readFile(path string) (types.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.SelectedFile{}, err
	}
	if info.IsDir() {
		return types.SelectedFile{}, fmt.Errorf("%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SelectedFile{}, err
	}
	return types.SelectedFile{
		Name:    filepath.Base(path),
		Path:    path,
		Content: data,
	}, nil
}
