package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ttsfront/internal/pkg/ttsfront/backends/lexical"
	"ttsfront/internal/pkg/ttsfront/segment"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [word...]",
		Short: "Show lexicon sizes and the pronunciation of words",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.requireConfig()
			if err != nil {
				return err
			}

			fe, err := loadFrontend(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			info := fe.Info()
			fmt.Fprintf(out, "Backend: %s\n", info.Name)
			fmt.Fprintf(out, "Language: %s\n", info.Language)
			fmt.Fprintf(out, "Tokens: %d\n", info.NumTokens)
			fmt.Fprintf(out, "Words: %d\n", info.NumWords)
			fmt.Fprintf(out, "Punctuations: %d\n", info.NumPunctuations)

			if len(args) == 0 {
				return nil
			}

			lf, ok := fe.(*lexical.Frontend)
			if !ok {
				return fmt.Errorf("backend %q does not expose a lexicon", info.Name)
			}
			lex := lf.Lexicon()

			for _, word := range args {
				key := segment.ToLowerASCII(word)
				switch {
				case lex.IsPunctuation(word):
					id, found := lex.TokenID(word)
					if !found {
						fmt.Fprintf(out, "%s\tpunctuation (no token)\n", word)
						continue
					}
					fmt.Fprintf(out, "%s\tpunctuation %d\n", word, id)
				default:
					ids, found := lex.Pronunciation(key)
					if !found {
						fmt.Fprintf(out, "%s\t<unknown>\n", word)
						continue
					}
					fmt.Fprintf(out, "%s\t%s\n", word, joinIDs(ids))
				}
			}
			return nil
		},
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, " ")
}
