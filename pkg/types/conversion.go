// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Severity classifies a status message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Color returns the display color hint for the severity.
func (s Severity) Color() string {
	switch s {
	case SeveritySuccess:
		return "green"
	case SeverityError:
		return "red"
	default:
		return "blue"
	}
}

// StatusMessage is the latest human-readable state of an attempt.
type StatusMessage struct {
	Text     string   `json:"text" yaml:"text"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// SelectedFile is one image chosen for an attempt.
type SelectedFile struct {
	// Name is the filename sent with the multipart part.
	Name string `json:"name" yaml:"name"`

	// Path is the local path the file was read from, if any.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Content is the raw file content.
	Content []byte `json:"-" yaml:"-"`
}

// Selection is the ordered set of files chosen for one attempt.
type Selection []SelectedFile

// Empty reports whether no files were chosen.
func (s Selection) Empty() bool {
	return len(s) == 0
}

// Names returns the filenames in selection order.
func (s Selection) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Artifact is the binary document returned by the conversion service.
type Artifact struct {
	// Filename is taken from Content-Disposition, defaulting to "output.pdf".
	Filename string `json:"filename" yaml:"filename"`

	// ContentType is the response Content-Type as sent by the service.
	ContentType string `json:"content_type" yaml:"content_type"`

	// Data holds the artifact bytes.
	Data []byte `json:"-" yaml:"-"`

	// Pages is the page count when inspection ran, otherwise 0.
	Pages int `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// Size returns the artifact length in bytes.
func (a *Artifact) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}

// ConversionResult is the outcome of one attempt. Exactly one of Artifact
// and Err is set.
type ConversionResult struct {
	AttemptID string        `json:"attempt_id" yaml:"attempt_id"`
	Status    StatusMessage `json:"status" yaml:"status"`
	Artifact  *Artifact     `json:"artifact,omitempty" yaml:"artifact,omitempty"`
	Err       error         `json:"-" yaml:"-"`
}

// Succeeded reports whether the attempt produced an artifact.
func (r ConversionResult) Succeeded() bool {
	return r.Err == nil && r.Artifact != nil
}
