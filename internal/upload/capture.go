package upload

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Attachment is a captured file selection, held in memory until a form embeds
// it into a multipart submission. Capture performs no validation beyond content
// sniffing and no compression.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Capture reads a local file into an attachment bound to the given form field.
func Capture(field, path string) (*Attachment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return FromReader(field, filepath.Base(path), file)
}

// FromReader captures an attachment from an already-open stream. A nil return
// with nil error never happens; removal is expressed by the caller passing nil
// attachments onward.
func FromReader(field, filename string, r io.Reader) (*Attachment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Attachment{
		Field:       field,
		Filename:    filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

// IsImage reports whether the sniffed content type is an image.
func (a *Attachment) IsImage() bool {
	return a != nil && strings.HasPrefix(a.ContentType, "image/")
}

// PreviewDataURL returns an inline data URL for image attachments and an empty
// string for everything else.
func (a *Attachment) PreviewDataURL() string {
	if !a.IsImage() {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", a.ContentType, base64.StdEncoding.EncodeToString(a.Data))
}
