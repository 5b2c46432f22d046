// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package request dispatches an HTTP call for a verb chosen from a closed
// set. It is a thin pass-through over net/http: one call per invocation, no
// retries, no status-code interpretation, the raw *http.Response handed
// back to the caller.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Method is an HTTP verb tag. Only the constants below are dispatchable.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// ErrUnsupportedMethod is returned when the verb is not in the dispatch map.
var ErrUnsupportedMethod = errors.New("unsupported request method")

// Options carries the per-call request parameters. The zero value is valid.
type Options struct {
	Headers map[string]string // request headers, set verbatim
	Params  map[string]string // query params for GET, JSON body fallback otherwise
	Body    any               // JSON-marshaled body for mutating verbs, overrides Params
	Timeout time.Duration     // per-call timeout; 0 keeps the client default
	Client  *http.Client      // underlying client; nil means http.DefaultClient
}

// buildFunc assembles the *http.Request for one verb.
type buildFunc func(ctx context.Context, rawURL string, opts Options) (*http.Request, error)

// builders is the closed verb dispatch map. Verbs outside it fail before
// any network activity.
var builders = map[Method]buildFunc{
	MethodGet:    buildQueryRequest,
	MethodPost:   buildJSONRequest,
	MethodPut:    buildJSONRequest,
	MethodPatch:  buildJSONRequest,
	MethodDelete: buildJSONRequest,
}

// ParseMethod maps a verb name onto the closed method set.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(s))
	if _, ok := builders[m]; !ok {
		return "", errors.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
	return m, nil
}

// Do issues exactly one HTTP call for the given verb and returns the
// response as produced by the underlying client. Network and timeout errors
// propagate with context added via %w; the response is never inspected
// beyond existing, so non-2xx statuses are the caller's to handle. The
// caller owns resp.Body.
func Do(ctx context.Context, method Method, rawURL string, opts Options) (*http.Response, error) {
	build, ok := builders[method]
	if !ok {
		return nil, errors.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}

	req, err := build(ctx, rawURL, opts)
	if err != nil {
		return nil, err
	}
	req.Method = string(method)

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	if opts.Timeout > 0 {
		scoped := *client
		scoped.Timeout = opts.Timeout
		client = &scoped
	}

	zerolog.Ctx(ctx).Debug().
		Str("method", string(method)).
		Str("url", rawURL).
		Msg("dispatching request")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Errorf("dispatching %s %s: %w", method, rawURL, err)
	}
	return resp, nil
}

// BuildURL assembles "scheme://host:port/path". A leading slash on path is
// optional.
func BuildURL(scheme, host string, port int, path string) string {
	path = strings.TrimPrefix(path, "/")
	return fmt.Sprintf("%s://%s:%d/%s", scheme, host, port, path)
}

// buildQueryRequest encodes Params into the query string, body left empty.
func buildQueryRequest(ctx context.Context, rawURL string, opts Options) (*http.Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Errorf("parsing url %s: %w", rawURL, err)
	}

	q := u.Query()
	for k, v := range opts.Params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Errorf("building request for %s: %w", rawURL, err)
	}
	return req, nil
}

// buildJSONRequest marshals Body (or Params when Body is nil) as a JSON
// body. An empty payload sends no body at all.
func buildJSONRequest(ctx context.Context, rawURL string, opts Options) (*http.Request, error) {
	var payload any
	switch {
	case opts.Body != nil:
		payload = opts.Body
	case len(opts.Params) > 0:
		payload = opts.Params
	}

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, rawURL, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, rawURL, nil)
	}
	if err != nil {
		return nil, errors.Errorf("building request for %s: %w", rawURL, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
