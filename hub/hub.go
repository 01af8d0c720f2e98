// Package hub downloads the tokenizer dictionary files from a Hugging Face
// repository into a local cache directory.
//
// Downloads are coordinated across processes with a per-file lock and land
// in the cache through a temporary file plus atomic rename, so a crashed or
// concurrent download can never leave a half-written dictionary behind.
package hub

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/trnlp/go-turkish-tokenizer/dict"
	"github.com/trnlp/go-turkish-tokenizer/tokenizers/turkishmorph"
)

const (
	// DefaultEndpoint is the public Hugging Face endpoint.
	DefaultEndpoint = "https://huggingface.co"

	// DefaultRepoID is the repository that distributes the dictionaries.
	DefaultRepoID = "trnlp/turkish-tokenizer"

	// DefaultDirCreationPerm is used when creating cache directories.
	DefaultDirCreationPerm = os.FileMode(0755)

	// DefaultFileCreationPerm is used when creating downloaded files.
	DefaultFileCreationPerm = os.FileMode(0644)
)

// Repo points to a repository on a Hugging Face compatible endpoint.
// Configure with the With* chainable methods before downloading.
type Repo struct {
	// ID is the repository id, e.g. "trnlp/turkish-tokenizer".
	ID string

	endpoint  string
	cacheDir  string
	authToken string
	client    *http.Client
}

// New creates a Repo for the given repository id with default settings.
func New(id string) *Repo {
	return &Repo{
		ID:       id,
		endpoint: DefaultEndpoint,
		client:   http.DefaultClient,
	}
}

// WithEndpoint sets an alternative endpoint (e.g. a mirror) and returns the
// modified Repo.
func (r *Repo) WithEndpoint(endpoint string) *Repo {
	r.endpoint = strings.TrimSuffix(endpoint, "/")
	return r
}

// WithCacheDir sets the directory downloads are cached in and returns the
// modified Repo. The default is <user cache dir>/trtok.
func (r *Repo) WithCacheDir(dir string) *Repo {
	r.cacheDir = dir
	return r
}

// WithAuthToken sets the token used to authenticate to the endpoint, for
// private repositories. It returns the modified Repo.
func (r *Repo) WithAuthToken(token string) *Repo {
	r.authToken = token
	return r
}

// WithClient sets the HTTP client used for downloads and returns the
// modified Repo.
func (r *Repo) WithClient(client *http.Client) *Repo {
	r.client = client
	return r
}

// FileURL returns the resolve URL for fileName on the main revision.
func (r *Repo) FileURL(fileName string) string {
	return r.endpoint + "/" + r.ID + "/resolve/main/" + fileName
}

// repoCacheDir returns the cache directory for this repo, creating the path
// name (not the directory) from the repo id.
func (r *Repo) repoCacheDir() (string, error) {
	base := r.cacheDir
	if base == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve user cache directory")
		}
		base = filepath.Join(userCache, "trtok")
	}
	return filepath.Join(base, strings.ReplaceAll(r.ID, "/", "--")), nil
}

// DownloadDictionaries fetches the three dictionary files (if not already
// cached) and returns the directory holding them, suitable for dict.Load.
func (r *Repo) DownloadDictionaries(ctx context.Context) (string, error) {
	dir := ""
	for _, name := range []string{dict.RootsFile, dict.SuffixesFile, dict.BytePiecesFile} {
		path, err := r.DownloadFile(ctx, name)
		if err != nil {
			return "", err
		}
		dir = filepath.Dir(path)
	}
	return dir, nil
}

// Tokenizer downloads the dictionaries (if needed) and constructs the
// tokenizer from the cached files.
func (r *Repo) Tokenizer(ctx context.Context) (*turkishmorph.Tokenizer, error) {
	dir, err := r.DownloadDictionaries(ctx)
	if err != nil {
		return nil, err
	}
	return dict.Load(dir)
}
