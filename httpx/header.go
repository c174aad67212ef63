package httpx

import (
	"net/http"

	"github.com/jonatansalemes/go-multipart-test/errorx"
	"github.com/jonatansalemes/go-multipart-test/formdatax"
)

// SetFormContentType applies the Content-Type header produced by a form
// build to the request.
func SetFormContentType(r *http.Request, h formdatax.Header) error {
	if r == nil {
		return errorx.InternalErrorf("request can not be nil")
	}
	h.Set(r.Header)
	return nil
}
