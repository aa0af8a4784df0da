// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// UploadProgress returns a body wrapper that draws an upload progress bar
// on w as the request body is read.
func UploadProgress(w io.Writer) func(body io.Reader, size int64) io.Reader {
	return func(body io.Reader, size int64) io.Reader {
		bar := progressbar.NewOptions64(
			size,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("uploading"),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		r := progressbar.NewReader(body, bar)
		return &r
	}
}
