package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ttsfront/internal/pkg/ttsfront/frontend"
	"ttsfront/internal/pkg/ttsfront/output"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert text to token ids, one sequence per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.requireConfig()
			if err != nil {
				return err
			}

			text, err := cfg.ResolveText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			fe, err := loadFrontend(cfg)
			if err != nil {
				return err
			}

			log.Info().Str("text", truncateText(text, 50)).Msg("Converting text...")
			startTime := time.Now()

			seqs, err := convertLines(fe, text)
			if err != nil {
				return err
			}

			log.Info().
				Dur("elapsed", time.Since(startTime)).
				Int("sequences", len(seqs)).
				Msg("Text converted")

			if cfg.Output == "" {
				return output.Write(cmd.OutOrStdout(), seqs, format)
			}
			if err := output.Save(cfg.Output, seqs, format); err != nil {
				return fmt.Errorf("failed to save output: %w", err)
			}
			log.Info().Str("output", cfg.Output).Msg("Token ids saved")
			return nil
		},
	}
}

// convertLines converts every non-empty line of text on its own.
func convertLines(fe frontend.Frontend, text string) ([]output.Sequence, error) {
	var seqs []output.Sequence
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ids, err := fe.ConvertTextToTokenIds(line)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %q: %w", truncateText(line, 50), err)
		}
		seqs = append(seqs, output.Sequence{Text: line, IDs: ids})
	}
	return seqs, nil
}
