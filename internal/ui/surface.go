// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui renders attempt status and exposes the downloaded artifact.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/pdiddy/imgpdf/pkg/types"
)

// Surface is the status/download surface. Status lines go to out; the
// spinner draws on errOut so piped stdout stays clean.
type Surface struct {
	out       io.Writer
	downloads *Downloads
	colors    map[types.Severity]*color.Color
	spin      *spinner.Spinner

	mu      sync.Mutex
	current types.StatusMessage
}

// NewSurface builds a Surface from cfg. Artifacts are written to
// cfg.Output, or to session-owned files under tempDir when Output is empty.
func NewSurface(cfg types.DisplayConfig, out, errOut io.Writer, tempDir string) *Surface {
	s := &Surface{
		out:       out,
		downloads: NewDownloads(cfg.Output, tempDir),
		colors:    make(map[types.Severity]*color.Color),
	}
	for _, sev := range []types.Severity{types.SeverityInfo, types.SeveritySuccess, types.SeverityError} {
		c := color.New(colorAttrs[sev.Color()])
		if cfg.NoColor {
			c.DisableColor()
		}
		s.colors[sev] = c
	}
	// The spinner needs a file to check for a terminal; other writers get
	// plain status lines.
	if f, ok := errOut.(*os.File); ok && cfg.Spinner {
		s.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	}
	return s
}

var colorAttrs = map[string]color.Attribute{
	"blue":  color.FgBlue,
	"green": color.FgGreen,
	"red":   color.FgRed,
}

// Notify shows msg as the current status. It is safe for concurrent use and
// matches convert.NotifyFunc.
func (s *Surface) Notify(msg types.StatusMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.show(msg)
}

// Apply publishes the outcome of an attempt. On success the artifact is
// installed as the new download, replacing and releasing the previous one;
// on failure only the status changes and the download surface keeps its
// prior state. A failure to save the artifact is shown as an error status
// and returned.
func (s *Surface) Apply(res types.ConversionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !res.Succeeded() {
		s.show(res.Status)
		return nil
	}

	h, err := s.downloads.Install(res.Artifact)
	if err != nil {
		s.show(types.StatusMessage{
			Text:     fmt.Sprintf("Error: saving PDF: %v", err),
			Severity: types.SeverityError,
		})
		return err
	}

	s.show(res.Status)
	fmt.Fprintf(s.out, "Download: %s (%s)\n", h.URL, describe(res.Artifact))
	return nil
}

// Status returns the latest status message.
func (s *Surface) Status() types.StatusMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Download returns the current download handle and whether the download
// surface is visible.
func (s *Surface) Download() (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloads.Current()
}

// Close stops the spinner and releases the current download handle.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopSpinner()
	return s.downloads.Release()
}

func (s *Surface) show(msg types.StatusMessage) {
	s.stopSpinner()
	s.current = msg

	if msg.Severity == types.SeverityInfo && s.spin != nil {
		s.spin.Suffix = " " + msg.Text
		s.spin.Start()
		if s.spin.Active() {
			return
		}
	}

	c, ok := s.colors[msg.Severity]
	if !ok {
		c = s.colors[types.SeverityInfo]
	}
	c.Fprintln(s.out, msg.Text)
}

func (s *Surface) stopSpinner() {
	if s.spin != nil && s.spin.Active() {
		s.spin.Stop()
	}
}

func describe(a *types.Artifact) string {
	if a.Pages > 0 {
		return fmt.Sprintf("%s, %d bytes, %d pages", a.Filename, a.Size(), a.Pages)
	}
	return fmt.Sprintf("%s, %d bytes", a.Filename, a.Size())
}
