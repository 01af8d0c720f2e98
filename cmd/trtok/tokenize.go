package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/trnlp/go-turkish-tokenizer/tokenizers/api"
)

var (
	rootStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	suffixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	pieceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")) // magenta
)

// styleFor picks the display style for a token. Marker tokens get their own
// color even though they are technically roots.
func styleFor(tok api.Token) lipgloss.Style {
	if strings.HasPrefix(tok.Text, "<") && strings.HasSuffix(tok.Text, ">") {
		return markerStyle
	}
	switch tok.Kind {
	case api.KindSuffix:
		return suffixStyle
	case api.KindBytePiece:
		return pieceStyle
	default:
		return rootStyle
	}
}

func newTokenizeCmd() *cobra.Command {
	var showIDs bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Print the tokens of the given text (or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := loadTokenizer(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			for _, token := range tok.TokenizeText(text) {
				display := token.Text
				if display == " " {
					display = "␣"
				}
				line := display
				if !plain {
					line = styleFor(token).Render(display)
				}
				if showIDs {
					line = fmt.Sprintf("%s\t%d\t%s", line, token.ID, token.Kind)
				}
				cmd.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "Also print token ids and kinds")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colored output")
	return cmd
}
