package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trnlp/go-turkish-tokenizer/dict"
)

// dictServer serves a minimal set of dictionary files and counts requests.
func dictServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	files := map[string]string{
		"/test/repo/resolve/main/" + dict.RootsFile: `{
			"<pad>": 0, "<eos>": 1, "<uppercase>": 2, "<unknown>": 3, " ": 4,
			"ev": 5
		}`,
		"/test/repo/resolve/main/" + dict.SuffixesFile:   `{"ler": 100}`,
		"/test/repo/resolve/main/" + dict.BytePiecesFile: `{}`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
		body, ok := files[req.URL.Path]
		if !ok {
			http.NotFound(w, req)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFileURL(t *testing.T) {
	repo := New("trnlp/turkish-tokenizer")
	assert.Equal(t,
		"https://huggingface.co/trnlp/turkish-tokenizer/resolve/main/kokler.json",
		repo.FileURL("kokler.json"))

	repo = repo.WithEndpoint("https://mirror.example.com/")
	assert.Equal(t,
		"https://mirror.example.com/trnlp/turkish-tokenizer/resolve/main/kokler.json",
		repo.FileURL("kokler.json"))
}

func TestDownloadFile_CachesResult(t *testing.T) {
	var hits atomic.Int64
	server := dictServer(t, &hits)

	repo := New("test/repo").WithEndpoint(server.URL).WithCacheDir(t.TempDir())

	path, err := repo.DownloadFile(context.Background(), dict.RootsFile)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<pad>")
	assert.Equal(t, int64(1), hits.Load())

	// Second call hits the cache, not the server.
	again, err := repo.DownloadFile(context.Background(), dict.RootsFile)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int64(1), hits.Load())
}

func TestDownloadFile_NotFound(t *testing.T) {
	var hits atomic.Int64
	server := dictServer(t, &hits)

	repo := New("test/repo").WithEndpoint(server.URL).WithCacheDir(t.TempDir())

	_, err := repo.DownloadFile(context.Background(), "missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestDownloadFile_CancelledContext(t *testing.T) {
	var hits atomic.Int64
	server := dictServer(t, &hits)

	repo := New("test/repo").WithEndpoint(server.URL).WithCacheDir(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.DownloadFile(ctx, dict.RootsFile)
	require.Error(t, err)
}

func TestTokenizer_EndToEnd(t *testing.T) {
	var hits atomic.Int64
	server := dictServer(t, &hits)

	repo := New("test/repo").WithEndpoint(server.URL).WithCacheDir(t.TempDir())

	tok, err := repo.Tokenizer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ev", "ler"}, tok.Tokenize("evler"))
	assert.Equal(t, int64(3), hits.Load())

	// A second tokenizer is built entirely from the cache.
	_, err = repo.Tokenizer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), hits.Load())
}
