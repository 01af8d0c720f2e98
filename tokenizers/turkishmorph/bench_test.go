package turkishmorph

import "testing"

func newBenchTokenizer(b *testing.B) *Tokenizer {
	b.Helper()
	tok, err := New(testRootsJSON, testSuffixesJSON, testBytePiecesJSON)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	return tok
}

func BenchmarkEncode_ShortText(b *testing.B) {
	tok := newBenchTokenizer(b)
	for i := 0; i < b.N; i++ {
		tok.Encode("merhaba dünya")
	}
}

func BenchmarkEncode_MediumText(b *testing.B) {
	tok := newBenchTokenizer(b)
	for i := 0; i < b.N; i++ {
		tok.Encode("Türkçe çok güzel kitaplarımızdan geliyorum")
	}
}

func BenchmarkTokenize_CamelCase(b *testing.B) {
	tok := newBenchTokenizer(b)
	for i := 0; i < b.N; i++ {
		tok.Tokenize("merhabaDünyaKitaplarımızdanGeliyorum")
	}
}

func BenchmarkTokenizeText_Mixed(b *testing.B) {
	tok := newBenchTokenizer(b)
	texts := []string{
		"merhaba dünya",
		"Türkçe çok güzel",
		"merhabaDünyaKitaplarımızdan",
		"gelmiştim  geliyorum",
	}
	for i := 0; i < b.N; i++ {
		for _, text := range texts {
			tok.TokenizeText(text)
		}
	}
}
