package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ttsfront/internal/pkg/ttsfront/config"
	"ttsfront/internal/pkg/ttsfront/frontend"
)

// app holds the state one root command shares with its subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()
	a := &app{}

	cmd := &cobra.Command{
		Use:           "ttsfront",
		Short:         "Convert text to TTS token ids with a tokens/lexicon pair",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Flags:      cmd.Flags(),
				ConfigFile: a.cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			if err := setupLogging(loaded); err != nil {
				return err
			}
			a.cfg = loaded

			log.Debug().
				Str("assets", loaded.AssetPath).
				Str("tokens", loaded.Tokens).
				Str("lexicon", loaded.Lexicon).
				Str("language", loaded.Language).
				Str("backend", loaded.Backend).
				Msg("Configuration loaded")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newConvertCmd(a))
	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newBackendsCmd())

	return cmd
}

func (a *app) requireConfig() (*config.Config, error) {
	if a.cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return a.cfg, nil
}

func loadFrontend(cfg *config.Config) (frontend.Frontend, error) {
	log.Info().Str("backend", cfg.Backend).Str("assets", cfg.AssetPath).Msg("Loading front-end...")

	fe, err := frontend.New(cfg.Backend, frontend.Config{
		AssetPath:    cfg.AssetPath,
		TokensName:   cfg.Tokens,
		LexiconName:  cfg.Lexicon,
		Punctuations: cfg.Punctuations,
		Language:     cfg.Language,
		Debug:        cfg.Debug,
		Normalize:    cfg.Normalize,
		Strict:       cfg.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load front-end %q: %w", cfg.Backend, err)
	}

	info := fe.Info()
	log.Debug().
		Str("frontend", info.Name).
		Str("language", info.Language).
		Int("tokens", info.NumTokens).
		Int("words", info.NumWords).
		Msg("Front-end loaded")

	return fe, nil
}
