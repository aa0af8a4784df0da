// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to the conversion service.
type HTTPConfig struct {
	// Timeout bounds a single attempt, from dispatch until the response body
	// has been read. Expiry is reported as a transport failure.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "imgpdf/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConversionConfig holds settings for the upload/convert/download attempt.
type ConversionConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the base URL of the conversion service (e.g. "http://localhost:8000").
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Path is the conversion route appended to Endpoint (default "/convert/").
	Path string `json:"path" yaml:"path"`

	// Field is the multipart field name every file is attached under (default "files").
	Field string `json:"field" yaml:"field"`

	// APIToken is an optional bearer token sent in the Authorization header.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`

	// Inspect enables page counting of the returned artifact.
	Inspect bool `json:"inspect" yaml:"inspect"`
}

// DisplayConfig holds settings for the status/download surface.
type DisplayConfig struct {
	// Output is where a successful artifact is written. Empty means a
	// session-owned temporary file that is removed when superseded.
	Output string `json:"output" yaml:"output"`

	// NoColor disables severity colors.
	NoColor bool `json:"no_color" yaml:"no_color"`

	// Spinner shows an animated indicator while an attempt is processing.
	Spinner bool `json:"spinner" yaml:"spinner"`

	// Progress renders an upload progress bar on stderr.
	Progress bool `json:"progress" yaml:"progress"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is "console" or "json".
	Format string `json:"format" yaml:"format"`
}

// Config groups all settings for the CLI.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Display    DisplayConfig    `json:"display" yaml:"display"`
	Log        LogConfig        `json:"log" yaml:"log"`
}
