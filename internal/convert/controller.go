// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives one upload/convert/download attempt against the
// remote image-to-PDF service: it validates the selection, packs it into a
// multipart request, submits it under a deadline and turns the response
// into a ConversionResult for the caller to display.
package convert

import (
	"context"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/imgpdf/internal/httputil"
	"github.com/pdiddy/imgpdf/pkg/types"
)

const (
	msgProcessing = "Processing images..."
	msgSuccess    = "Conversion successful! You can download the PDF."

	defaultFilename = "output.pdf"
)

// Inspector reads structural facts from a returned artifact. It never
// decides success; a failing inspection is only logged.
type Inspector interface {
	PageCount(data []byte) (int, error)
}

// NotifyFunc receives intermediate status while an attempt is running.
type NotifyFunc func(types.StatusMessage)

// Controller runs conversion attempts. It holds no per-attempt state, so a
// single Controller can serve any number of attempts.
type Controller struct {
	client    *http.Client
	cfg       types.ConversionConfig
	log       zerolog.Logger
	inspector Inspector
	wrap      BodyWrapper
	newID     func() string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithInspector enables artifact inspection on success.
func WithInspector(i Inspector) Option {
	return func(c *Controller) { c.inspector = i }
}

// WithBodyWrapper decorates every outgoing request body.
func WithBodyWrapper(w BodyWrapper) Option {
	return func(c *Controller) { c.wrap = w }
}

// NewController creates a Controller that posts to the endpoint in cfg.
// A nil client means http.DefaultClient.
func NewController(client *http.Client, cfg types.ConversionConfig, opts ...Option) *Controller {
	if client == nil {
		client = http.DefaultClient
	}
	c := &Controller{
		client: client,
		cfg:    cfg,
		log:    zerolog.Nop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run performs one attempt for sel and returns its result. notify, when
// non-nil, receives the "processing" status before the request is sent.
// Every failure is reported through the result; Run never panics on
// service or network errors and never retries.
func (c *Controller) Run(ctx context.Context, sel types.Selection, notify NotifyFunc) types.ConversionResult {
	id := c.newID()
	log := c.log.With().Str("attempt", id).Logger()

	if sel.Empty() {
		return c.fail(log, id, emptySelectionError())
	}

	req, err := BuildRequest(ctx, c.cfg, sel, c.wrap)
	if err != nil {
		return c.fail(log, id, transportError(err))
	}

	if notify != nil {
		notify(types.StatusMessage{Text: msgProcessing, Severity: types.SeverityInfo})
	}

	log.Debug().
		Str("url", req.URL.String()).
		Strs("files", sel.Names()).
		Int64("bytes", req.ContentLength).
		Msg("dispatching conversion request")

	resp, err := httputil.DoWithDeadline(ctx, c.client, req, c.cfg.Timeout)
	if err != nil {
		return c.fail(log, id, transportError(err))
	}
	if !resp.OK() {
		return c.fail(log, id, serviceError(resp.StatusCode, resp.Body))
	}

	art := &types.Artifact{
		Filename:    artifactFilename(resp.Header),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        resp.Body,
	}
	if c.inspector != nil {
		pages, err := c.inspector.PageCount(art.Data)
		if err != nil {
			log.Warn().Err(err).Msg("artifact inspection failed")
		} else {
			art.Pages = pages
		}
	}

	log.Info().
		Str("filename", art.Filename).
		Int("bytes", art.Size()).
		Int("pages", art.Pages).
		Msg("conversion succeeded")

	return types.ConversionResult{
		AttemptID: id,
		Status:    types.StatusMessage{Text: msgSuccess, Severity: types.SeveritySuccess},
		Artifact:  art,
	}
}

func (c *Controller) fail(log zerolog.Logger, id string, e *AttemptError) types.ConversionResult {
	ev := log.Error().Str("kind", string(e.Kind))
	if e.StatusCode != 0 {
		ev = ev.Int("status", e.StatusCode).Str("body", e.Diagnostic)
	}
	if e.Err != nil {
		ev = ev.Err(e.Err)
	}
	ev.Msg("conversion attempt failed")

	return types.ConversionResult{
		AttemptID: id,
		Status:    types.StatusMessage{Text: e.UserText(), Severity: types.SeverityError},
		Err:       e,
	}
}

// artifactFilename takes the filename from Content-Disposition, falling
// back to output.pdf.
func artifactFilename(h http.Header) string {
	cd := h.Get("Content-Disposition")
	if cd == "" {
		return defaultFilename
	}
	_, params, err := mime.ParseMediaType(cd)
	if err != nil {
		return defaultFilename
	}
	name := filepath.Base(params["filename"])
	if name == "." || name == "/" || name == "" {
		return defaultFilename
	}
	return name
}
