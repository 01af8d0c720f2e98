package turkishmorph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidJSON(t *testing.T) {
	_, err := New([]byte(`{not json`), testSuffixesJSON, testBytePiecesJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root")

	_, err = New(testRootsJSON, []byte(`[]`), testBytePiecesJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suffix")

	_, err = New(testRootsJSON, testSuffixesJSON, []byte(``))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte-pair")
}

func TestNew_MissingSpecialToken(t *testing.T) {
	for _, missing := range []string{"<pad>", "<eos>", "<uppercase>", "<unknown>", " "} {
		t.Run(missing, func(t *testing.T) {
			roots := map[string]int{
				"<pad>":       0,
				"<eos>":       1,
				"<uppercase>": 2,
				"<unknown>":   3,
				" ":           4,
			}
			delete(roots, missing)

			_, err := NewFromMaps(roots, map[string]int{}, map[string]int{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestMaxKeyLen_CountsRunesNotBytes(t *testing.T) {
	// "çiçek" is 5 runes but 7 bytes; the lookup bound is in runes.
	assert.Equal(t, 5, maxKeyLen(map[string]int{"çiçek": 1, "ev": 2}))
	assert.Equal(t, 0, maxKeyLen(map[string]int{}))
	assert.Equal(t, 0, maxKeyLen(nil))
}

// On key collision across tables the combined map keeps the later insertion:
// byte pieces over suffixes over roots. Tokenization itself is unaffected,
// it always consults the three tables independently.
func TestCombinedVocab_InsertionPrecedence(t *testing.T) {
	roots := map[string]int{
		"<pad>":       0,
		"<eos>":       1,
		"<uppercase>": 2,
		"<unknown>":   3,
		" ":           4,
		"de":          10,
		"su":          11,
	}
	suffixes := map[string]int{"de": 20, "su": 21}
	bytePieces := map[string]int{"de": 30}

	tok, err := NewFromMaps(roots, suffixes, bytePieces)
	require.NoError(t, err)

	id, ok := tok.TokenToID("de")
	require.True(t, ok)
	assert.Equal(t, 30, id)

	id, ok = tok.TokenToID("su")
	require.True(t, ok)
	assert.Equal(t, 21, id)

	// The root table still wins during tokenization.
	tokens := tok.TokenizeText("de")
	require.Len(t, tokens, 1)
	assert.Equal(t, 10, tokens[0].ID)
}

func TestEmptyTables(t *testing.T) {
	roots := map[string]int{
		"<pad>":       0,
		"<eos>":       1,
		"<uppercase>": 2,
		"<unknown>":   3,
		" ":           4,
	}
	tok, err := NewFromMaps(roots, map[string]int{}, map[string]int{})
	require.NoError(t, err)

	// Nothing matches, every character falls through to <unknown>.
	assert.Equal(t, []string{"<unknown>", "<unknown>"}, tok.Tokenize("ab"))
}
