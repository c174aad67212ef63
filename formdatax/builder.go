// Package formdatax assembles multipart/form-data request bodies from
// in-memory text fields and on-disk files, primarily for constructing
// test requests against HTTP services.
package formdatax

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/jonatansalemes/go-multipart-test/errorx"
)

const textContentType = "text/plain"

// TextField is a plain form value serialized as a text/plain part.
type TextField struct {
	Name        string
	Value       string
	ContentType string
}

// FileField references an on-disk file serialized as a file part. The
// file bytes are read when Build is called, not at registration.
type FileField struct {
	FormName    string
	FileName    string
	ContentType string
	Path        string
}

// Header is the Content-Type header pair matching a built body.
type Header struct {
	Name  string
	Value string
}

// Set writes the header pair onto h.
func (h Header) Set(header http.Header) {
	header.Set(h.Name, h.Value)
}

// Builder accumulates form fields and serializes them on demand into a
// multipart/form-data body. File parts are emitted before text parts,
// each group in registration order. Duplicate field names are allowed
// and every occurrence is emitted.
type Builder struct {
	files       []FileField
	texts       []TextField
	newBoundary func() string
}

// NewBuilder returns an empty builder. Unless overridden with
// WithBoundarySource, each Build call uses a fresh random v4 UUID in its
// canonical hyphenated form as the boundary token.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		newBoundary: func() string {
			return uuid.Must(uuid.NewRandom()).String()
		},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// WithText appends a text field and returns the receiver so calls can be
// chained. Names and values are taken as-is, empty strings included.
func (b *Builder) WithText(name, value string) *Builder {
	b.texts = append(b.texts, TextField{
		Name:        name,
		Value:       value,
		ContentType: textContentType,
	})
	return b
}

// WithFile appends a file field backed by path and returns the receiver.
// The path is not checked here; a missing or unreadable file only
// surfaces when Build is called.
func (b *Builder) WithFile(path, name, contentType, fileName string) *Builder {
	b.files = append(b.files, FileField{
		FormName:    name,
		FileName:    fileName,
		ContentType: contentType,
		Path:        path,
	})
	return b
}

// Build serializes the registered fields into a body and its matching
// Content-Type header. A fresh boundary is generated on every call and
// the builder is left untouched, so the same builder may be built
// repeatedly.
//
// A file that cannot be read yields a NOT_FOUND error and no partial
// result. Field content is not scanned for accidental occurrences of
// the boundary token; random boundaries make collisions improbable.
func (b *Builder) Build() (Header, []byte, error) {
	boundary := b.newBoundary()

	var body bytes.Buffer

	for _, f := range b.files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return Header{}, nil, errorx.NotFoundErrorf("unable to read form file %q: %s", f.Path, err).WithCause(err)
		}

		fmt.Fprintf(&body, "--%s\r\n", boundary)
		fmt.Fprintf(&body, "Content-Disposition: form-data; name=\"%s\"; filename=\"%s\"\r\n", f.FormName, f.FileName)
		fmt.Fprintf(&body, "Content-Type: %s\r\n", f.ContentType)
		fmt.Fprintf(&body, "Content-Length: %d\r\n\r\n", len(data))
		body.Write(data)
		body.WriteString("\r\n")
	}

	for _, f := range b.texts {
		fmt.Fprintf(&body, "--%s\r\n", boundary)
		fmt.Fprintf(&body, "Content-Disposition: form-data; name=\"%s\"\r\n", f.Name)
		fmt.Fprintf(&body, "Content-Type: %s\r\n", f.ContentType)
		fmt.Fprintf(&body, "Content-Length: %d\r\n\r\n", len(f.Value))
		body.WriteString(f.Value)
		body.WriteString("\r\n")
	}

	fmt.Fprintf(&body, "--%s--\r\n", boundary)

	header := Header{
		Name:  "Content-Type",
		Value: fmt.Sprintf("multipart/form-data; boundary=%s", boundary),
	}

	return header, body.Bytes(), nil
}

// MustBuild is Build with the fail-fast contract expected of test code:
// it panics instead of returning an error.
func (b *Builder) MustBuild() (Header, []byte) {
	header, body, err := b.Build()
	if err != nil {
		panic(err.Error())
	}
	return header, body
}
