// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/mattermost/mattermost-track/model"
)

// Auth decorates outgoing requests with credentials.
type Auth interface {
	Apply(req *http.Request)
}

// BearerAuth sends "Authorization: Bearer <token>".
type BearerAuth string

func (a BearerAuth) Apply(req *http.Request) {
	if a != "" {
		req.Header.Set("Authorization", "Bearer "+string(a))
	}
}

// BasicAuth sends base64(email:token), as Atlassian cloud expects.
type BasicAuth struct {
	Email string
	Token string
}

func (a BasicAuth) Apply(req *http.Request) {
	creds := base64.StdEncoding.EncodeToString([]byte(a.Email + ":" + a.Token))
	req.Header.Set("Authorization", "Basic "+creds)
}

// HeaderAuth sends the token in a named header, e.g. PRIVATE-TOKEN.
type HeaderAuth struct {
	Name  string
	Value string
}

func (a HeaderAuth) Apply(req *http.Request) {
	req.Header.Set(a.Name, a.Value)
}

// Client is a thin JSON client over a tracker REST API.
type Client struct {
	BaseURL string
	Auth    Auth
	HTTP    *http.Client
	Backend string
}

func NewClient(backend, baseURL string, auth Auth, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(Options{Backend: backend})
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Auth:    auth,
		HTTP:    httpClient,
		Backend: backend,
	}
}

// Request describes a single call. Path is relative to the base URL and
// must already be escaped; see Path.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Body     interface{}
	Resource Resource
}

// Path formats a request path, escaping every argument as a path segment.
func Path(format string, args ...string) string {
	escaped := make([]interface{}, len(args))
	for i, a := range args {
		escaped[i] = url.PathEscape(a)
	}
	return fmt.Sprintf(format, escaped...)
}

// Do sends the request and decodes a JSON reply into out, when out is not nil.
func (c *Client) Do(ctx context.Context, r Request, out interface{}) error {
	u := c.BaseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return model.NewParseError("unable to encode request body: "+err.Error(), err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return model.NewHTTPError(err.Error(), err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Auth != nil {
		c.Auth.Apply(req)
	}

	mlog.Debug("Tracker request",
		mlog.String("backend", c.Backend),
		mlog.String("method", r.Method),
		mlog.String("path", r.Path),
	)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return MapRequestError(err)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return MapRequestError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		terr := MapStatus(resp.StatusCode, resp.Header, data, r.Resource)
		mlog.Debug("Tracker request failed",
			mlog.String("backend", c.Backend),
			mlog.String("path", r.Path),
			mlog.Int("status", resp.StatusCode),
			mlog.Err(terr),
		)
		return terr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return model.NewParseError(fmt.Sprintf("%s %s: %s", r.Method, r.Path, err.Error()), err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, res Resource, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Resource: res}, out)
}

func (c *Client) Post(ctx context.Context, path string, query url.Values, body interface{}, res Resource, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Query: query, Body: body, Resource: res}, out)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, res Resource, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body, Resource: res}, out)
}

func (c *Client) Delete(ctx context.Context, path string, res Resource) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Resource: res}, nil)
}
