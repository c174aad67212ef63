package testx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/jonatansalemes/go-multipart-test/formdatax"
)

// executeRequest, creates a new ResponseRecorder
// then executes the request by calling ServeHTTP in the router
// after which the handler writes the response to the response recorder
// which we can then inspect.
func executeRequest(req *http.Request, s *http.Server) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Handler.ServeHTTP(rr, req)

	return rr
}

func unmarshalBody[T any](res *httptest.ResponseRecorder) T {
	body, _ := io.ReadAll(res.Body)
	var data T
	_ = json.Unmarshal(body, &data)
	return data
}

// PostForm encodes the form and posts it to the handler behind s. It
// panics if a registered file cannot be read, per the builder's
// fail-fast contract.
func PostForm(s *http.Server, url string, form *formdatax.Builder) *httptest.ResponseRecorder {
	header, body := form.MustBuild()

	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(body))
	header.Set(req.Header)

	return executeRequest(req, s)
}

// PostFormJson posts the encoded form and unmarshals the JSON response body.
func PostFormJson[T any](s *http.Server, url string, form *formdatax.Builder) (*httptest.ResponseRecorder, T) {
	res := PostForm(s, url, form)

	return res, unmarshalBody[T](res)
}
