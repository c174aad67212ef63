package testx

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jonatansalemes/go-multipart-test/formdatax"
	"github.com/stretchr/testify/require"
)

// FileToUpload represents a file that will be part of the multipart form data.
type FileToUpload struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

// FormData represents the data for a multipart/form-data request.
type FormData struct {
	Fields map[string]string
	Files  []FileToUpload
}

// Builder materializes the in-memory file contents under t.TempDir and
// returns a builder with every field registered. Text fields are added
// in sorted name order so the produced body is deterministic.
func (fd FormData) Builder(t *testing.T) *formdatax.Builder {
	t.Helper()

	b := formdatax.NewBuilder()

	dir := t.TempDir()
	for _, f := range fd.Files {
		path := filepath.Join(dir, f.FileName)
		require.NoError(t, os.WriteFile(path, f.Content, 0o600))
		b.WithFile(path, f.FieldName, f.ContentType, f.FileName)
	}

	names := make([]string, 0, len(fd.Fields))
	for name := range fd.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WithText(name, fd.Fields[name])
	}

	return b
}
