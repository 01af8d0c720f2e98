package turkishmorph

import (
	"unicode"

	"github.com/trnlp/go-turkish-tokenizer/tokenizers/api"
	"github.com/trnlp/go-turkish-tokenizer/trcase"
)

// segment is one camel-case-delimited part of a word, already lowercased.
// start is the rune offset of the segment in the original word, kept so the
// assembler can check whether the segment's first character was uppercase.
type segment struct {
	text  string
	start int
}

// splitCamel splits word at uppercase letters and lowercases each part.
// A boundary at position i (i >= 1) closes the current part and opens a new
// one starting at i; a word with no interior uppercase letter comes back as
// a single segment at offset 0.
func splitCamel(word string) []segment {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}

	var parts []segment
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) {
			if start < i {
				parts = append(parts, segment{text: trcase.ToLower(string(runes[start:i])), start: start})
			}
			start = i
		}
	}
	parts = append(parts, segment{text: trcase.ToLower(string(runes[start:])), start: start})
	return parts
}

// tokenizeSegment greedily consumes seg left to right. At each position the
// root table is tried first, then the suffix table, then the byte-piece
// table, each for its own longest prefix match. Category order wins over
// match length: a shorter root match beats a longer suffix match. When no
// table matches, the unknown marker is emitted and the cursor advances by
// one rune.
func (v *vocabulary) tokenizeSegment(seg string, out []api.Token) []api.Token {
	runes := []rune(seg)
	pos := 0
	for pos < len(runes) {
		rest := runes[pos:]

		if text, id, ok := longestPrefix(rest, v.roots, v.maxRootLen); ok {
			out = append(out, api.Token{Text: text, ID: id, Kind: api.KindRoot})
			pos += len([]rune(text))
			continue
		}
		if text, id, ok := longestPrefix(rest, v.suffixes, v.maxSuffixLen); ok {
			out = append(out, api.Token{Text: text, ID: id, Kind: api.KindSuffix})
			pos += len([]rune(text))
			continue
		}
		if text, id, ok := longestPrefix(rest, v.bytePieces, v.maxPieceLen); ok {
			out = append(out, api.Token{Text: text, ID: id, Kind: api.KindBytePiece})
			pos += len([]rune(text))
			continue
		}

		out = append(out, v.unknownMarker)
		pos++
	}
	return out
}

// longestPrefix returns the longest prefix of runes that is a key of table,
// trying candidate lengths from min(len(runes), maxLen) down to 1.
func longestPrefix(runes []rune, table map[string]int, maxLen int) (string, int, bool) {
	end := len(runes)
	if maxLen < end {
		end = maxLen
	}
	for i := end; i >= 1; i-- {
		candidate := string(runes[:i])
		if id, ok := table[candidate]; ok {
			return candidate, id, true
		}
	}
	return "", 0, false
}
