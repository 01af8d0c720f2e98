package turkishmorph

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/trnlp/go-turkish-tokenizer/tokenizers/api"
)

// Special token texts that must be present in the root dictionary.
const (
	UppercaseToken = "<uppercase>"
	UnknownToken   = "<unknown>"
	SpaceToken     = " "
	PadToken       = "<pad>"
	EOSToken       = "<eos>"
)

// vocabulary holds the three dictionaries and everything derived from them.
// It is populated once at construction and never mutated afterwards, so it is
// safe for concurrent readers.
type vocabulary struct {
	roots      map[string]int
	suffixes   map[string]int
	bytePieces map[string]int

	// Max key length per table, in runes. 0 for an empty table.
	maxRootLen   int
	maxSuffixLen int
	maxPieceLen  int

	// Combined map used only for id lookup by exact token text. Built by
	// inserting roots, then suffixes, then byte pieces; later insertions win
	// on key collision.
	combined map[string]int

	// Reverse of combined, for Decode.
	idToText map[int]string

	uppercaseMarker api.Token
	unknownMarker   api.Token
	spaceMarker     api.Token

	padID int
	eosID int
}

// parseTable decodes a single {token: id} JSON object.
func parseTable(data []byte, name string) (map[string]int, error) {
	var table map[string]int
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s dictionary", name)
	}
	return table, nil
}

// maxKeyLen returns the maximum key length of table in runes, or 0 if the
// table is empty.
func maxKeyLen(table map[string]int) int {
	maxLen := 0
	for k := range table {
		if n := utf8.RuneCountInString(k); n > maxLen {
			maxLen = n
		}
	}
	return maxLen
}

// normalizeKeys brings every key to NFC so that lookup cannot miss a token
// over a byte-level representation difference in the source file. Input text
// gets the same normalization in TokenizeText. The common case (all keys
// already NFC) returns the map unchanged.
func normalizeKeys(table map[string]int) map[string]int {
	for k := range table {
		if !norm.NFC.IsNormalString(k) {
			normalized := make(map[string]int, len(table))
			for text, id := range table {
				normalized[norm.NFC.String(text)] = id
			}
			return normalized
		}
	}
	return table
}

// newVocabulary assembles the vocabulary from the three dictionaries.
// The maps are retained (not copied): the caller hands over ownership.
func newVocabulary(roots, suffixes, bytePieces map[string]int) (*vocabulary, error) {
	roots = normalizeKeys(roots)
	suffixes = normalizeKeys(suffixes)
	bytePieces = normalizeKeys(bytePieces)

	v := &vocabulary{
		roots:        roots,
		suffixes:     suffixes,
		bytePieces:   bytePieces,
		maxRootLen:   maxKeyLen(roots),
		maxSuffixLen: maxKeyLen(suffixes),
		maxPieceLen:  maxKeyLen(bytePieces),
	}

	v.combined = make(map[string]int, len(roots)+len(suffixes)+len(bytePieces))
	for text, id := range roots {
		v.combined[text] = id
	}
	for text, id := range suffixes {
		v.combined[text] = id
	}
	for text, id := range bytePieces {
		v.combined[text] = id
	}

	v.idToText = make(map[int]string, len(v.combined))
	for text, id := range v.combined {
		v.idToText[id] = text
	}

	// The five special tokens must resolve through the root table.
	for _, text := range []string{UppercaseToken, UnknownToken, SpaceToken, PadToken, EOSToken} {
		if _, ok := roots[text]; !ok {
			return nil, errors.Errorf("root dictionary is missing required special token %q", text)
		}
	}

	v.uppercaseMarker = api.Token{Text: UppercaseToken, ID: roots[UppercaseToken], Kind: api.KindRoot}
	v.unknownMarker = api.Token{Text: UnknownToken, ID: roots[UnknownToken], Kind: api.KindRoot}
	v.spaceMarker = api.Token{Text: SpaceToken, ID: roots[SpaceToken], Kind: api.KindRoot}
	v.padID = roots[PadToken]
	v.eosID = roots[EOSToken]

	return v, nil
}
