package httpx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jonatansalemes/go-multipart-test/errorx"
	"github.com/jonatansalemes/go-multipart-test/formdatax"
	"github.com/jonatansalemes/go-multipart-test/slogx"
)

// NewFormRequest builds an *http.Request carrying the encoded form body
// and its matching Content-Type header. A request without a form gets an
// empty body.
func NewFormRequest(ctx context.Context, input *Request) (*http.Request, error) {
	var bodyReader io.Reader
	var contentType *formdatax.Header

	if input.Form != nil {
		header, body, err := input.Form.Build()
		if err != nil {
			return nil, err
		}

		bodyReader = bytes.NewReader(body)
		contentType = &header
	}

	httpRequest, err := http.NewRequestWithContext(ctx, input.Method, input.URL, bodyReader)
	if err != nil {
		return nil, err
	}

	if input.Headers != nil {
		httpRequest.Header = input.Headers
	}

	if contentType != nil {
		if err := SetFormContentType(httpRequest, *contentType); err != nil {
			return nil, err
		}
	}

	buildQueryParams(httpRequest, input.QueryParameters)

	return httpRequest, nil
}

// MakeHTTPRequest encodes the form, issues the request and returns the
// collected response.
func (c *Client) MakeHTTPRequest(ctx context.Context, input *Request) (*Response, error) {
	if err := input.Validate(); err != nil {
		return nil, errorx.InvalidArgumentErrorf("invalid request: %s", err).WithCause(err)
	}

	httpRequest, err := NewFormRequest(ctx, input)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		slogx.Error(ctx, "form request failed", err,
			attribute.String("http.method", input.Method),
			attribute.String("http.url", input.URL),
		)
		return nil, err
	}

	defer httpResponse.Body.Close()

	duration := time.Since(startTime)

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, err
	}

	slogx.Debug(ctx, "form request completed",
		attribute.String("http.method", input.Method),
		attribute.String("http.url", input.URL),
		attribute.Int("http.status_code", httpResponse.StatusCode),
		attribute.Int64("http.duration_ms", duration.Milliseconds()),
	)

	return &Response{
		StatusCode: httpResponse.StatusCode,
		Body:       body,
		Headers:    httpResponse.Header,
		Duration:   duration,
	}, nil
}

func buildQueryParams(httpRequest *http.Request, params url.Values) {
	if len(params) > 0 {
		requestQueryParams := httpRequest.URL.Query()

		for queryParamKey, queryParamValues := range params {
			for _, queryParamValue := range queryParamValues {
				requestQueryParams.Add(queryParamKey, queryParamValue)
			}
		}

		httpRequest.URL.RawQuery = requestQueryParams.Encode()
	}
}
