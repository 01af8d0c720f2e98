// Package turkishmorph implements a rule-based morphological tokenizer for
// Turkish text.
//
// Tokenization is a greedy longest-match lookup cascading across three ranked
// dictionaries: word roots, suffixes and byte-pair fallback pieces. Each word
// is first split at camel-case boundaries and lowercased with Turkish casing
// rules (İ→i, I→ı); a segment that began with an uppercase letter is preceded
// by an <uppercase> marker token, consecutive words are separated by a space
// token, and characters matching no dictionary fall through to <unknown>.
//
// A Tokenizer is immutable after construction and safe for concurrent use.
package turkishmorph

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/trnlp/go-turkish-tokenizer/tokenizers/api"
)

// ErrTokenNotFound is returned (wrapped) by ConvertTokensToIDs when a token
// text is not present in the combined vocabulary.
var ErrTokenNotFound = errors.New("token not found in vocabulary")

// Tokenizer is the public engine. The zero value is not usable; construct
// with New or NewFromMaps.
type Tokenizer struct {
	vocab *vocabulary
}

// Compile time assert that Tokenizer implements the api.Tokenizer interface.
var _ api.Tokenizer = &Tokenizer{}

// New creates a Tokenizer from the raw contents of the three dictionary
// files, each a JSON object mapping token text to integer id: roots
// (kokler.json), suffixes (ekler.json) and byte-pair fallback pieces
// (bpe_tokenler.json).
//
// It fails if any dictionary does not parse, or if any of the five special
// tokens (<uppercase>, <unknown>, the single space, <pad>, <eos>) is absent
// from the root dictionary.
func New(rootsJSON, suffixesJSON, bytePiecesJSON []byte) (*Tokenizer, error) {
	roots, err := parseTable(rootsJSON, "root")
	if err != nil {
		return nil, err
	}
	suffixes, err := parseTable(suffixesJSON, "suffix")
	if err != nil {
		return nil, err
	}
	bytePieces, err := parseTable(bytePiecesJSON, "byte-pair")
	if err != nil {
		return nil, err
	}
	return NewFromMaps(roots, suffixes, bytePieces)
}

// NewFromMaps creates a Tokenizer directly from the three dictionary maps.
// The maps are retained and must not be mutated by the caller afterwards.
func NewFromMaps(roots, suffixes, bytePieces map[string]int) (*Tokenizer, error) {
	vocab, err := newVocabulary(roots, suffixes, bytePieces)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{vocab: vocab}, nil
}

// TokenizeText is the detailed entry point: it returns every emitted token
// with its id and dictionary kind, in order.
//
// The input is split on the single space character. Each non-empty word is
// camel-split and tokenized segment by segment; exactly one space token is
// emitted between consecutive words, including empty ones, so "  " yields
// two space tokens. The empty string yields no tokens.
func (t *Tokenizer) TokenizeText(text string) []api.Token {
	text = norm.NFC.String(text)

	var out []api.Token
	words := strings.Split(text, " ")
	for idx, word := range words {
		if strings.TrimSpace(word) != "" {
			out = t.tokenizeWord(word, out)
		}
		if idx < len(words)-1 {
			out = append(out, t.vocab.spaceMarker)
		}
	}
	return out
}

// tokenizeWord appends the tokens of a single word to out. A segment whose
// first character was uppercase in the original word is preceded by the
// <uppercase> marker; the segment text itself is already lowercased.
func (t *Tokenizer) tokenizeWord(word string, out []api.Token) []api.Token {
	runes := []rune(word)
	for _, seg := range splitCamel(word) {
		if seg.start < len(runes) && unicode.IsUpper(runes[seg.start]) {
			out = append(out, t.vocab.uppercaseMarker)
		}
		out = t.vocab.tokenizeSegment(seg.text, out)
	}
	return out
}

// Tokenize returns the token texts of TokenizeText, in order.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := t.TokenizeText(text)
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

// Encode returns the token ids of TokenizeText, in order.
func (t *Tokenizer) Encode(text string) []int {
	tokens := t.TokenizeText(text)
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		ids[i] = tok.ID
	}
	return ids
}

// EncodePlus returns ids, token texts and an attention mask of all 1s, one
// per token.
func (t *Tokenizer) EncodePlus(text string) api.Encoding {
	tokens := t.TokenizeText(text)
	enc := api.Encoding{
		InputIDs:      make([]int, len(tokens)),
		Tokens:        make([]string, len(tokens)),
		AttentionMask: make([]int, len(tokens)),
	}
	for i, tok := range tokens {
		enc.InputIDs[i] = tok.ID
		enc.Tokens[i] = tok.Text
		enc.AttentionMask[i] = 1
	}
	return enc
}

// Decode returns the concatenation of the token texts for ids. Ids not in
// the vocabulary are skipped. Spaces are real tokens, so no separator is
// inserted.
func (t *Tokenizer) Decode(ids []int) string {
	var b strings.Builder
	for _, id := range ids {
		if text, ok := t.vocab.idToText[id]; ok {
			b.WriteString(text)
		}
	}
	return b.String()
}

// ConvertTokensToIDs looks up each token text in the combined vocabulary.
// The input must consist of tokens known to exist (e.g. output of Tokenize);
// an unknown text is a caller-contract violation and fails with an error
// wrapping ErrTokenNotFound.
func (t *Tokenizer) ConvertTokensToIDs(tokens []string) ([]int, error) {
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		id, ok := t.vocab.combined[tok]
		if !ok {
			return nil, errors.Wrapf(ErrTokenNotFound, "token %q", tok)
		}
		ids[i] = id
	}
	return ids, nil
}

// TokenToID returns the id for a token text from the combined vocabulary.
func (t *Tokenizer) TokenToID(token string) (int, bool) {
	id, ok := t.vocab.combined[token]
	return id, ok
}

// ContainsToken reports whether the combined vocabulary contains token.
func (t *Tokenizer) ContainsToken(token string) bool {
	_, ok := t.vocab.combined[token]
	return ok
}

// VocabSize returns the number of entries in the combined vocabulary.
func (t *Tokenizer) VocabSize() int {
	return len(t.vocab.combined)
}

// Vocab returns a copy of the combined vocabulary mapping.
func (t *Tokenizer) Vocab() map[string]int {
	vocab := make(map[string]int, len(t.vocab.combined))
	for text, id := range t.vocab.combined {
		vocab[text] = id
	}
	return vocab
}

// SpecialTokenID returns the id for the given special token.
func (t *Tokenizer) SpecialTokenID(token api.SpecialToken) (int, error) {
	switch token {
	case api.TokPad:
		return t.vocab.padID, nil
	case api.TokEndOfSentence:
		return t.vocab.eosID, nil
	case api.TokUnknown:
		return t.vocab.unknownMarker.ID, nil
	case api.TokUppercase:
		return t.vocab.uppercaseMarker.ID, nil
	case api.TokSpace:
		return t.vocab.spaceMarker.ID, nil
	default:
		return 0, errors.Errorf("unknown special token: %s (%d)", token, int(token))
	}
}

// PadToken returns the padding token text.
func (t *Tokenizer) PadToken() string { return PadToken }

// EOSToken returns the end-of-sequence token text.
func (t *Tokenizer) EOSToken() string { return EOSToken }

// PadTokenID returns the id of the padding token.
func (t *Tokenizer) PadTokenID() int { return t.vocab.padID }

// EOSTokenID returns the id of the end-of-sequence token.
func (t *Tokenizer) EOSTokenID() int { return t.vocab.eosID }
