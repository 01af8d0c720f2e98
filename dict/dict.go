// Package dict loads the three tokenizer dictionary files from disk or from
// any fs.FS and constructs the tokenizer from them.
//
// The engine itself never touches the filesystem; this package is the
// construction-phase collaborator that brings the dictionary data into
// memory. On-disk files are memory-mapped while the JSON is decoded, which
// avoids a full extra copy of the larger dictionaries.
package dict

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"github.com/trnlp/go-turkish-tokenizer/tokenizers/turkishmorph"
)

// Dictionary file names, as distributed with the tokenizer.
const (
	RootsFile      = "kokler.json"
	SuffixesFile   = "ekler.json"
	BytePiecesFile = "bpe_tokenler.json"
)

// Load reads the three dictionary files from dir and constructs a tokenizer.
func Load(dir string) (*turkishmorph.Tokenizer, error) {
	roots, err := loadTable(filepath.Join(dir, RootsFile))
	if err != nil {
		return nil, err
	}
	suffixes, err := loadTable(filepath.Join(dir, SuffixesFile))
	if err != nil {
		return nil, err
	}
	bytePieces, err := loadTable(filepath.Join(dir, BytePiecesFile))
	if err != nil {
		return nil, err
	}
	return turkishmorph.NewFromMaps(roots, suffixes, bytePieces)
}

// LoadFS reads the three dictionary files from the root of fsys and
// constructs a tokenizer. Useful with go:embed-ed dictionaries.
func LoadFS(fsys fs.FS) (*turkishmorph.Tokenizer, error) {
	roots, err := fs.ReadFile(fsys, RootsFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", RootsFile)
	}
	suffixes, err := fs.ReadFile(fsys, SuffixesFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", SuffixesFile)
	}
	bytePieces, err := fs.ReadFile(fsys, BytePiecesFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", BytePiecesFile)
	}
	return turkishmorph.New(roots, suffixes, bytePieces)
}

// loadTable memory-maps path and decodes it as a {token: id} JSON object.
// The decoded map owns its own storage, so the mapping is released before
// returning.
func loadTable(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dictionary %q", path)
	}
	defer func() { _ = f.Close() }()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mmap dictionary %q", path)
	}
	defer func() { _ = data.Unmap() }()

	var table map[string]int
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrapf(err, "failed to parse dictionary %q", path)
	}
	return table, nil
}
