package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Print the token ids of the given text (or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := loadTokenizer(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			ids := tok.Encode(text)
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = strconv.Itoa(id)
			}
			cmd.Println(strings.Join(parts, " "))
			return nil
		},
	}
	return cmd
}
