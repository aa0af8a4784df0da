// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/pdiddy/imgpdf/internal/convert"
	"github.com/pdiddy/imgpdf/internal/inspect"
	"github.com/pdiddy/imgpdf/internal/ui"
	"github.com/pdiddy/imgpdf/pkg/types"
)

// errAttemptFailed is returned after a failed attempt has already been
// shown on the status surface.
var errAttemptFailed = errors.New("conversion attempt failed")

// newController wires the controller from cfg. The HTTP client has no
// timeout of its own; each attempt runs under cfg.Conversion.Timeout.
func newController(cfg types.Config) *convert.Controller {
	opts := []convert.Option{convert.WithLogger(logger)}
	if cfg.Conversion.Inspect {
		opts = append(opts, convert.WithInspector(inspect.NewPDF()))
	}
	if cfg.Display.Progress {
		opts = append(opts, convert.WithBodyWrapper(ui.UploadProgress(os.Stderr)))
	}
	return convert.NewController(&http.Client{}, cfg.Conversion, opts...)
}

// selectionFailed reports a selection that could not be read. No request
// is sent for it.
func selectionFailed(s *ui.Surface, err error) {
	logger.Error().Err(err).Msg("reading selection failed")
	s.Notify(types.StatusMessage{Text: "Error: " + err.Error(), Severity: types.SeverityError})
}
