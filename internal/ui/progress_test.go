// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadProgress_PassesBodyThrough(t *testing.T) {
	var bar bytes.Buffer
	body := strings.Repeat("x", 4096)

	r := UploadProgress(&bar)(strings.NewReader(body), int64(len(body)))
	got, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t, body, string(got))
}
