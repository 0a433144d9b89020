package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPQuestionSourceFetch(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(Question{
			Question:    "2 + 2 = ?",
			Answer:      "4",
			Options:     []string{"3", "4", "5", "6"},
			Explanation: "basic addition",
		})
	}))
	defer srv.Close()

	src := NewHTTPQuestionSource(srv.URL)
	q, err := src.FetchQuestion(context.Background(), "SimpleInterest")
	require.NoError(t, err)

	assert.Equal(t, "/SimpleInterest", gotPath)
	assert.Equal(t, "4", q.Answer)
	assert.Len(t, q.Options, 4)
}

func TestHTTPQuestionSourceNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := NewHTTPQuestionSource(srv.URL)
	_, err := src.FetchQuestion(context.Background(), "Age")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPQuestionSourceDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	src := NewHTTPQuestionSource(srv.URL)
	_, err := src.FetchQuestion(context.Background(), "Calendar")
	require.Error(t, err)
}
