// Package api defines the Tokenizer API shared by the concrete tokenizer
// implementations, so that callers can depend on the output types without
// pulling in a particular engine.
package api

// Kind classifies which dictionary a token was matched against.
type Kind int

const (
	// KindRoot marks a token found in the root (stem) dictionary.
	// Marker tokens (<uppercase>, <unknown>, the space token) are roots too.
	KindRoot Kind = iota
	// KindSuffix marks a token found in the suffix dictionary.
	KindSuffix
	// KindBytePiece marks a token found in the byte-pair fallback dictionary.
	KindBytePiece
)

// String returns the name of the token kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "ROOT"
	case KindSuffix:
		return "SUFFIX"
	case KindBytePiece:
		return "BPE"
	default:
		return "INVALID"
	}
}

// Token is one unit of tokenizer output: the matched text, its vocabulary id
// and the dictionary it came from. Tokens are plain values, created fresh for
// every call; they hold no reference back to the vocabulary.
type Token struct {
	Text string
	ID   int
	Kind Kind
}

// Encoding is the detailed result of EncodePlus: ids and token texts in
// emission order, plus an attention mask of all 1s with the same length.
type Encoding struct {
	InputIDs      []int
	Tokens        []string
	AttentionMask []int
}

// Tokenizer interface allows one to convert text to "tokens" (integer ids)
// and back.
//
// It also allows mapping of special tokens: tokens with a common semantic
// (like padding) but that may map to different ids (int) for different
// tokenizers.
type Tokenizer interface {
	Encode(text string) []int
	Decode(ids []int) string

	// SpecialTokenID returns ID for given special token if registered, or an error if not.
	SpecialTokenID(token SpecialToken) (int, error)
}

// SpecialToken is an enum of commonly used special tokens.
type SpecialToken int

const (
	TokPad SpecialToken = iota
	TokEndOfSentence
	TokUnknown
	TokUppercase
	TokSpace
	TokSpecialTokensCount
)

// String returns the name of the special token.
func (s SpecialToken) String() string {
	switch s {
	case TokPad:
		return "pad"
	case TokEndOfSentence:
		return "end_of_sentence"
	case TokUnknown:
		return "unknown"
	case TokUppercase:
		return "uppercase"
	case TokSpace:
		return "space"
	default:
		return "invalid"
	}
}
