package main

import (
	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Print vocabulary statistics and special tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := loadTokenizer(cmd)
			if err != nil {
				return err
			}

			cmd.Printf("Vocabulary size: %d\n", tok.VocabSize())
			cmd.Printf("Pad token: %q (id %d)\n", tok.PadToken(), tok.PadTokenID())
			cmd.Printf("EOS token: %q (id %d)\n", tok.EOSToken(), tok.EOSTokenID())

			for _, text := range []string{"<uppercase>", "<unknown>", " "} {
				if id, ok := tok.TokenToID(text); ok {
					cmd.Printf("Marker %q: id %d\n", text, id)
				}
			}
			return nil
		},
	}
	return cmd
}
