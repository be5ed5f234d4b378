package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

type Response struct {
	StatusCode int
	Body       string
}

type TestRequestOpt func(*http.Request, *http.Response)

// JSONBody marshals v into a request body.
func JSONBody(v any) io.Reader {
	encoded, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bytes.NewReader(encoded)
}

func WithHeader(key, value string) TestRequestOpt {
	return func(req *http.Request, _ *http.Response) {
		if req != nil {
			req.Header.Set(key, value)
		}
	}
}

func MustBindJSON(v any) TestRequestOpt {
	return func(_ *http.Request, resp *http.Response) {
		if resp == nil {
			return
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			panic(err)
		}
		// put the body back so that the response still carries it
		resp.Body = io.NopCloser(bytes.NewReader(body))
		if err := json.Unmarshal(body, v); err != nil {
			panic(err)
		}
	}
}

func DoTestRequest(
	ts *httptest.Server, method, path string, body io.Reader, opts ...TestRequestOpt,
) Response {
	req, err := http.NewRequestWithContext(context.TODO(), method, ts.URL+path, body)
	if err != nil {
		panic(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req, nil)
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	for _, opt := range opts {
		opt(nil, resp)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}
}
