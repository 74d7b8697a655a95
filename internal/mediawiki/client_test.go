// SPDX-License-Identifier: Apache-2.0

package mediawiki_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikitoolsproj/wikitools/internal/mediawiki"
)

// fakeWiki is an httptest handler speaking just enough of the action API for
// the client: token queries, login, and edits.
type fakeWiki struct {
	loginOK  bool
	editCode string // non-empty: every edit fails with this API error code
	edits    []map[string]string
}

func (w *fakeWiki) handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		switch r.Form.Get("action") {
		case "query":
			typ := r.Form.Get("type")
			fmt.Fprintf(rw, `{"query":{"tokens":{"%stoken":"%s-token"}}}`, typ, typ)
		case "login":
			if w.loginOK && r.Form.Get("lgtoken") == "login-token" {
				fmt.Fprint(rw, `{"login":{"result":"Success"}}`)
			} else {
				fmt.Fprint(rw, `{"login":{"result":"Failed","reason":"bad credentials"}}`)
			}
		case "edit":
			if w.editCode != "" {
				fmt.Fprintf(rw, `{"error":{"code":"%s","info":"edit refused"}}`, w.editCode)
				return
			}
			edit := map[string]string{}
			for _, key := range []string{"title", "text", "section", "sectiontitle", "token"} {
				edit[key] = r.Form.Get(key)
			}
			w.edits = append(w.edits, edit)
			fmt.Fprint(rw, `{"edit":{"result":"Success"}}`)
		default:
			http.Error(rw, "unknown action", http.StatusBadRequest)
		}
	}
}

func newTestClient(t *testing.T, wiki *fakeWiki) *mediawiki.Client {
	t.Helper()
	srv := httptest.NewServer(wiki.handler())
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	client, err := mediawiki.New("http", host, "/", nil)
	require.NoError(t, err)
	return client
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, &fakeWiki{loginOK: true})
	require.NoError(t, client.Login(context.Background(), "alice", "secret"))
}

func TestClient_Login_Rejected(t *testing.T) {
	client := newTestClient(t, &fakeWiki{loginOK: false})
	err := client.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad credentials")
}

// ---------------------------------------------------------------------------
// Edit / EditSection
// ---------------------------------------------------------------------------

func TestClient_Edit(t *testing.T) {
	wiki := &fakeWiki{loginOK: true}
	client := newTestClient(t, wiki)

	require.NoError(t, client.Edit(context.Background(), "Some Page", "body text"))

	require.Len(t, wiki.edits, 1)
	assert.Equal(t, "Some Page", wiki.edits[0]["title"])
	assert.Equal(t, "body text", wiki.edits[0]["text"])
	assert.Equal(t, "csrf-token", wiki.edits[0]["token"], "edits carry the csrf token")
}

func TestClient_EditSection(t *testing.T) {
	wiki := &fakeWiki{}
	client := newTestClient(t, wiki)

	require.NoError(t, client.EditSection(context.Background(), "Some Page", "text", "2", "Tag"))

	require.Len(t, wiki.edits, 1)
	assert.Equal(t, "2", wiki.edits[0]["section"])
	assert.Equal(t, "Tag", wiki.edits[0]["sectiontitle"])
}

func TestClient_Edit_APIError(t *testing.T) {
	client := newTestClient(t, &fakeWiki{editCode: "nosuchsection"})

	err := client.EditSection(context.Background(), "Some Page", "text", "3", "Tag")
	require.Error(t, err)
	assert.True(t, mediawiki.IsSectionConflict(err))

	var apiErr *mediawiki.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "nosuchsection", apiErr.Code)
}

// ---------------------------------------------------------------------------
// IsSectionConflict
// ---------------------------------------------------------------------------

func TestIsSectionConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nosuchsection", &mediawiki.APIError{Code: "nosuchsection"}, true},
		{"wrapped nosuchsection", fmt.Errorf("save: %w", &mediawiki.APIError{Code: "nosuchsection"}), true},
		{"other api error", &mediawiki.APIError{Code: "protectedpage"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mediawiki.IsSectionConflict(tt.err))
		})
	}
}
