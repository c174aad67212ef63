package formdatax

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonatansalemes/go-multipart-test/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixedBoundary = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

func fixedBuilder() *Builder {
	return NewBuilder(WithBoundarySource(func() string {
		return fixedBoundary
	}))
}

func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestBuild(t *testing.T) {
	t.Run("should produce a multipart content type header", func(t *testing.T) {
		header, body, err := NewBuilder().WithText("name", "some_name").Build()
		require.NoError(t, err)

		assert.Equal(t, "Content-Type", header.Name)
		assert.True(t, strings.HasPrefix(header.Value, "multipart/form-data; boundary="))
		assert.NotEmpty(t, body)
	})

	t.Run("should generate a fresh boundary on every call", func(t *testing.T) {
		b := NewBuilder().WithText("name", "some_name")

		first, _, err := b.Build()
		require.NoError(t, err)
		second, _, err := b.Build()
		require.NoError(t, err)

		assert.NotEqual(t, first.Value, second.Value)
	})

	t.Run("should serialize a text field exactly", func(t *testing.T) {
		header, body, err := fixedBuilder().WithText("name", "some_name").Build()
		require.NoError(t, err)

		expected := "--" + fixedBoundary + "\r\n" +
			"Content-Disposition: form-data; name=\"name\"\r\n" +
			"Content-Type: text/plain\r\n" +
			"Content-Length: 9\r\n\r\n" +
			"some_name\r\n" +
			"--" + fixedBoundary + "--\r\n"
		assert.Equal(t, expected, string(body))
		assert.Equal(t, "multipart/form-data; boundary="+fixedBoundary, header.Value)
	})

	t.Run("should embed file bytes verbatim", func(t *testing.T) {
		content := []byte("line one\r\nline two\x00\x01\x02")
		path := writeFixture(t, "sample.bin", content)

		_, body, err := fixedBuilder().
			WithFile(path, "sample", "application/octet-stream", "sample.bin").
			Build()
		require.NoError(t, err)

		expected := "--" + fixedBoundary + "\r\n" +
			"Content-Disposition: form-data; name=\"sample\"; filename=\"sample.bin\"\r\n" +
			"Content-Type: application/octet-stream\r\n" +
			"Content-Length: 21\r\n\r\n" +
			string(content) + "\r\n" +
			"--" + fixedBoundary + "--\r\n"
		assert.Equal(t, expected, string(body))
	})

	t.Run("should emit files before texts in registration order", func(t *testing.T) {
		pathA := writeFixture(t, "a.txt", []byte("content-a"))
		pathB := writeFixture(t, "b.txt", []byte("content-b"))

		_, body, err := fixedBuilder().
			WithFile(pathA, "fileA", "text/plain", "a.txt").
			WithFile(pathB, "fileB", "text/plain", "b.txt").
			WithText("textC", "valueC").
			WithText("textD", "valueD").
			Build()
		require.NoError(t, err)

		offsets := make([]int, 0, 4)
		for _, name := range []string{"fileA", "fileB", "textC", "textD"} {
			offset := bytes.Index(body, []byte("name=\""+name+"\""))
			require.GreaterOrEqual(t, offset, 0, "part %s not found", name)
			offsets = append(offsets, offset)
		}

		assert.IsIncreasing(t, offsets)
	})

	t.Run("should serialize an empty builder to the closing delimiter only", func(t *testing.T) {
		header, body, err := fixedBuilder().Build()
		require.NoError(t, err)

		assert.Equal(t, "--"+fixedBoundary+"--\r\n", string(body))
		assert.Contains(t, header.Value, "boundary="+fixedBoundary)
	})

	t.Run("should accept empty names and values", func(t *testing.T) {
		_, body, err := fixedBuilder().WithText("", "").Build()
		require.NoError(t, err)

		assert.Contains(t, string(body), "Content-Disposition: form-data; name=\"\"\r\n")
		assert.Contains(t, string(body), "Content-Length: 0\r\n\r\n\r\n")
	})

	t.Run("should emit duplicate field names", func(t *testing.T) {
		_, body, err := fixedBuilder().
			WithText("name", "first").
			WithText("name", "second").
			Build()
		require.NoError(t, err)

		assert.Equal(t, 2, bytes.Count(body, []byte("name=\"name\"")))
	})

	t.Run("should not mutate the builder across calls", func(t *testing.T) {
		b := fixedBuilder().WithText("name", "some_name")

		_, first, err := b.Build()
		require.NoError(t, err)
		_, second, err := b.Build()
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should return a not found error for a missing file", func(t *testing.T) {
		header, body, err := NewBuilder().
			WithFile("testdata/does-not-exist.png", "sample", "image/png", "sample.png").
			WithText("name", "some_name").
			Build()

		require.Error(t, err)
		assert.True(t, errorx.IsNotFoundError(err))
		assert.Empty(t, header.Value)
		assert.Nil(t, body)
	})

	t.Run("should be parseable by the standard library", func(t *testing.T) {
		content := []byte("fixture content")
		path := writeFixture(t, "sample.txt", content)

		header, body, err := NewBuilder().
			WithFile(path, "sample", "text/plain", "sample.txt").
			WithText("name", "some_name").
			Build()
		require.NoError(t, err)

		mediaType, params, err := mime.ParseMediaType(header.Value)
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])

		filePart, err := reader.NextPart()
		require.NoError(t, err)
		assert.Equal(t, "sample", filePart.FormName())
		assert.Equal(t, "sample.txt", filePart.FileName())
		fileBytes, err := io.ReadAll(filePart)
		require.NoError(t, err)
		assert.Equal(t, content, fileBytes)

		textPart, err := reader.NextPart()
		require.NoError(t, err)
		assert.Equal(t, "name", textPart.FormName())
		textBytes, err := io.ReadAll(textPart)
		require.NoError(t, err)
		assert.Equal(t, "some_name", string(textBytes))

		_, err = reader.NextPart()
		assert.Equal(t, io.EOF, err)
	})
}

func TestMustBuild(t *testing.T) {
	t.Run("should return the header and body", func(t *testing.T) {
		header, body := fixedBuilder().WithText("name", "some_name").MustBuild()

		assert.Equal(t, "Content-Type", header.Name)
		assert.NotEmpty(t, body)
	})

	t.Run("should panic on an unreadable file", func(t *testing.T) {
		b := NewBuilder().WithFile("testdata/does-not-exist.png", "sample", "image/png", "sample.png")

		assert.Panics(t, func() {
			b.MustBuild()
		})
	})
}

func TestWithBoundarySource(t *testing.T) {
	t.Run("should use the injected source", func(t *testing.T) {
		header, _, err := fixedBuilder().Build()
		require.NoError(t, err)

		assert.Equal(t, "multipart/form-data; boundary="+fixedBoundary, header.Value)
	})
}
