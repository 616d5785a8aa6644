package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOpenAI_MissingKey(t *testing.T) {
	_, err := NewOpenAI("", "", "deepseek-chat", 0.1)
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  analysis text  "}}]}`))
	}))
	defer srv.Close()

	g, err := NewOpenAI("test-key", srv.URL, "deepseek-chat", 0.1)
	require.NoError(t, err)

	out, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "analysis text", out)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	g, err := NewOpenAI("test-key", srv.URL, "deepseek-chat", 0.1)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "prompt")
	require.ErrorContains(t, err, "empty response")
}
