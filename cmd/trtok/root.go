package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trnlp/go-turkish-tokenizer/dict"
	"github.com/trnlp/go-turkish-tokenizer/hub"
	"github.com/trnlp/go-turkish-tokenizer/tokenizers/turkishmorph"
)

var (
	dictDir  string
	repoID   string
	cacheDir string
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trtok",
		Short: "Turkish morphological tokenizer",
		Long: "trtok splits Turkish text into root, suffix and byte-pair tokens\n" +
			"using the three-dictionary greedy longest-match tokenizer.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&dictDir, "dict-dir", "",
		"Directory holding kokler.json, ekler.json and bpe_tokenler.json (skips the hub)")
	cmd.PersistentFlags().StringVar(&repoID, "repo", hub.DefaultRepoID,
		"Hugging Face repository to download the dictionaries from")
	cmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "",
		"Download cache directory (default: the user cache directory)")

	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newVocabCmd())

	return cmd
}

// loadTokenizer builds the tokenizer from --dict-dir when given, otherwise
// from the (cached) hub download.
func loadTokenizer(cmd *cobra.Command) (*turkishmorph.Tokenizer, error) {
	if dictDir != "" {
		return dict.Load(dictDir)
	}
	repo := hub.New(repoID)
	if cacheDir != "" {
		repo = repo.WithCacheDir(cacheDir)
	}
	return repo.Tokenizer(cmd.Context())
}

// readInput joins the args, or reads stdin when no args are given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, " "), nil
}
