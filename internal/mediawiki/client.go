// SPDX-License-Identifier: Apache-2.0

// Package mediawiki is a minimal MediaWiki action API client covering what
// the importer needs: logging in and saving pages, whole or per section.
package mediawiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// APIError is an error object returned by the wiki API.
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return "mediawiki: " + e.Code + ": " + e.Info
}

// IsSectionConflict reports whether err means an edit was addressed to a
// section that does not exist on the page yet. Such edits can be retried as
// an append-new-section edit.
func IsSectionConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == "nosuchsection"
}

// Client talks to one wiki site. It is not safe for concurrent use; the
// importer is a single linear pass.
type Client struct {
	endpoint string
	hc       *http.Client
	logger   *zap.Logger
	csrf     string
}

// New builds a client for the api.php endpoint at scheme://host<path>.
// The path must begin with "/"; "/" means the API lives at the site root.
func New(scheme, host, path string, logger *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint: fmt.Sprintf("%s://%s%sapi.php", scheme, host, path),
		hc:       &http.Client{Jar: jar},
		logger:   logger,
	}, nil
}

type apiResponse struct {
	Error *APIError    `json:"error"`
	Query *queryResult `json:"query"`
	Login *loginResult `json:"login"`
	Edit  *editResult  `json:"edit"`
}

type queryResult struct {
	Tokens map[string]string `json:"tokens"`
}

type loginResult struct {
	Result string `json:"result"`
	Reason string `json:"reason"`
}

type editResult struct {
	Result string `json:"result"`
}

// Login performs the token fetch and login dance for user.
func (c *Client) Login(ctx context.Context, user, pass string) error {
	token, err := c.token(ctx, "login")
	if err != nil {
		return fmt.Errorf("fetch login token: %w", err)
	}

	resp, err := c.post(ctx, url.Values{
		"action":     {"login"},
		"lgname":     {user},
		"lgpassword": {pass},
		"lgtoken":    {token},
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.Login == nil || resp.Login.Result != "Success" {
		reason := "unknown reason"
		if resp.Login != nil {
			reason = resp.Login.Result
			if resp.Login.Reason != "" {
				reason += ": " + resp.Login.Reason
			}
		}
		return fmt.Errorf("login rejected for %q: %s", user, reason)
	}

	c.logger.Info("logged in", zap.String("user", user))
	return nil
}

// Edit replaces the whole body of the page with the given title, creating
// the page when it does not exist.
func (c *Client) Edit(ctx context.Context, title, body string) error {
	return c.edit(ctx, title, url.Values{"text": {body}})
}

// EditSection saves body into one section of the page. Section is a 0-based
// section index rendered as a decimal string, or "new" to append a section
// titled sectionTitle.
func (c *Client) EditSection(ctx context.Context, title, body, section, sectionTitle string) error {
	return c.edit(ctx, title, url.Values{
		"text":         {body},
		"section":      {section},
		"sectiontitle": {sectionTitle},
	})
}

func (c *Client) edit(ctx context.Context, title string, params url.Values) error {
	if c.csrf == "" {
		token, err := c.token(ctx, "csrf")
		if err != nil {
			return fmt.Errorf("fetch csrf token: %w", err)
		}
		c.csrf = token
	}

	params.Set("action", "edit")
	params.Set("title", title)
	params.Set("token", c.csrf)
	resp, err := c.post(ctx, params)
	if err != nil {
		return fmt.Errorf("edit %q: %w", title, err)
	}
	if resp.Edit == nil || resp.Edit.Result != "Success" {
		return fmt.Errorf("edit %q: unexpected API response", title)
	}
	return nil
}

func (c *Client) token(ctx context.Context, typ string) (string, error) {
	resp, err := c.get(ctx, url.Values{
		"action": {"query"},
		"meta":   {"tokens"},
		"type":   {typ},
	})
	if err != nil {
		return "", err
	}
	if resp.Query == nil || resp.Query.Tokens[typ+"token"] == "" {
		return "", fmt.Errorf("no %s token in API response", typ)
	}
	return resp.Query.Tokens[typ+"token"], nil
}

func (c *Client) get(ctx context.Context, params url.Values) (*apiResponse, error) {
	params.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, params url.Values) (*apiResponse, error) {
	params.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*apiResponse, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned HTTP %d", resp.StatusCode)
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode API response: %w", err)
	}
	if out.Error != nil {
		return nil, out.Error
	}
	return &out, nil
}
