// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reads structural facts from PDF artifacts using pdfcpu.
package inspect

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating a config directory under the user's home.
	api.DisableConfigDir()
}

// PDF counts pages with relaxed validation, so that slightly malformed
// documents from the service still report a count.
type PDF struct{}

// NewPDF returns a pdfcpu-backed inspector.
func NewPDF() *PDF {
	return &PDF{}
}

// PageCount returns the number of pages in data.
func (p *PDF) PageCount(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, errors.New("empty artifact")
	}

	// pdfcpu mutates the configuration per command, so each call gets its own.
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	n, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}
