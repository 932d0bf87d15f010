package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ttsfront/internal/pkg/ttsfront/lexicon"
	"ttsfront/internal/pkg/ttsfront/output"
)

type Config struct {
	AssetPath    string `mapstructure:"asset_path"`
	Tokens       string `mapstructure:"tokens"`
	Lexicon      string `mapstructure:"lexicon"`
	Punctuations string `mapstructure:"punctuations"`
	Language     string `mapstructure:"language"`
	Backend      string `mapstructure:"backend"`
	Normalize    bool   `mapstructure:"normalize"`
	Strict       bool   `mapstructure:"strict"`
	Debug        bool   `mapstructure:"debug"`
	Text         string `mapstructure:"text"`
	File         string `mapstructure:"file"`
	Output       string `mapstructure:"output"`
	Format       string `mapstructure:"format"`
	LogLevel     string `mapstructure:"log_level"`
	LogFile      string `mapstructure:"log_file"`
}

const DefaultPunctuations = ", . ! ? ; : ， 。 ！ ？ ； ： 、"

func DefaultConfig() Config {
	return Config{
		AssetPath:    "models",
		Tokens:       "tokens.txt",
		Lexicon:      "lexicon.txt",
		Punctuations: DefaultPunctuations,
		Language:     "english",
		Backend:      "lexicon",
		Format:       "text",
		LogLevel:     "info",
	}
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"assets":       "asset_path",
	"tokens":       "tokens",
	"lexicon":      "lexicon",
	"punctuations": "punctuations",
	"language":     "language",
	"backend":      "backend",
	"normalize":    "normalize",
	"strict":       "strict",
	"debug":        "debug",
	"text":         "text",
	"file":         "file",
	"output":       "output",
	"format":       "format",
	"log-level":    "log_level",
	"log-file":     "log_file",
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.StringP("assets", "a", defaults.AssetPath, "Model directory or .zip bundle holding tokens and lexicon")
	fs.String("tokens", defaults.Tokens, "Name of the tokens file inside the assets")
	fs.String("lexicon", defaults.Lexicon, "Name of the lexicon file inside the assets")
	fs.StringP("punctuations", "p", defaults.Punctuations, "Space separated punctuation marks")
	fs.StringP("language", "L", defaults.Language, "Lexicon language (english, chinese)")
	fs.StringP("backend", "b", defaults.Backend, "Front-end backend")
	fs.Bool("normalize", defaults.Normalize, "Normalize text (numbers, quotes, whitespace) before conversion")
	fs.Bool("strict", defaults.Strict, "Fail on duplicated lexicon words instead of truncating the lexicon")
	fs.BoolP("debug", "d", defaults.Debug, "Log input bytes and segmentation for every conversion")
	fs.StringP("text", "t", defaults.Text, "Text to convert (use '-' to read from stdin)")
	fs.StringP("file", "f", defaults.File, "Read text from file")
	fs.StringP("output", "o", defaults.Output, "Output file (default stdout)")
	fs.String("format", defaults.Format, "Output format (text, json, yaml)")
	fs.StringP("log-level", "l", defaults.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-file", defaults.LogFile, "Log file path")
}

type LoadOptions struct {
	Flags      *pflag.FlagSet
	ConfigFile string
	Defaults   Config
}

// Load merges defaults, the config file, TTSFRONT_* environment variables
// and flags, in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v, opts.Defaults)

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("ttsfront")
		v.AddConfigPath(".")
		v.AddConfigPath("configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ttsfront"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("TTSFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("asset_path", c.AssetPath)
	v.SetDefault("tokens", c.Tokens)
	v.SetDefault("lexicon", c.Lexicon)
	v.SetDefault("punctuations", c.Punctuations)
	v.SetDefault("language", c.Language)
	v.SetDefault("backend", c.Backend)
	v.SetDefault("normalize", c.Normalize)
	v.SetDefault("strict", c.Strict)
	v.SetDefault("debug", c.Debug)
	v.SetDefault("text", c.Text)
	v.SetDefault("file", c.File)
	v.SetDefault("output", c.Output)
	v.SetDefault("format", c.Format)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("log_file", c.LogFile)
}

func (c *Config) Validate() error {
	if _, err := lexicon.ParseLanguage(c.Language); err != nil {
		return err
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Tokens == "" {
		return fmt.Errorf("tokens file name is required")
	}
	if c.Lexicon == "" {
		return fmt.Errorf("lexicon file name is required")
	}
	if c.AssetPath == "" {
		return fmt.Errorf("asset path is required")
	}
	return nil
}
