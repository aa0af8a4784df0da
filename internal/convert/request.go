// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/pdiddy/imgpdf/pkg/types"
)

const (
	defaultPath  = "/convert/"
	defaultField = "files"
)

// BodyWrapper decorates the request body before dispatch, for example to
// report upload progress. size is the body length in bytes.
type BodyWrapper func(body io.Reader, size int64) io.Reader

// EndpointURL joins the configured base URL and conversion path.
func EndpointURL(cfg types.ConversionConfig) string {
	path := cfg.Path
	if path == "" {
		path = defaultPath
	}
	return strings.TrimRight(cfg.Endpoint, "/") + "/" + strings.TrimLeft(path, "/")
}

// BuildRequest packs every file of sel into one multipart/form-data body,
// each under the configured field name, in selection order. Nothing about
// the files is validated here; the service owns those rules.
func BuildRequest(ctx context.Context, cfg types.ConversionConfig, sel types.Selection, wrap BodyWrapper) (*http.Request, error) {
	field := cfg.Field
	if field == "" {
		field = defaultField
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range sel {
		part, err := mw.CreatePart(partHeader(field, f))
		if err != nil {
			return nil, fmt.Errorf("creating part for %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, fmt.Errorf("writing part for %s: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	size := int64(buf.Len())
	var body io.Reader = &buf
	if wrap != nil {
		body = wrap(body, size)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, EndpointURL(cfg), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/pdf")
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	if cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIToken)
	}
	return req, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// partHeader mirrors multipart.Writer.CreateFormFile but sets the part's
// Content-Type from the file instead of application/octet-stream.
func partHeader(field string, f types.SelectedFile) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", contentType(f))
	return h
}

func contentType(f types.SelectedFile) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Name))); ct != "" {
		return ct
	}
	return http.DetectContentType(f.Content)
}
