// Package output writes converted token sequences as plain text, JSON or
// YAML.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Sequence is the token ids produced for one piece of text.
type Sequence struct {
	Text string  `json:"text" yaml:"text"`
	IDs  []int64 `json:"ids" yaml:"ids,flow"`
}

// Write encodes seqs to w. The text format writes one line of space
// separated ids per sequence.
func Write(w io.Writer, seqs []Sequence, format Format) error {
	switch format {
	case FormatText, "":
		bw := bufio.NewWriter(w)
		for _, s := range seqs {
			for i, id := range s.IDs {
				if i > 0 {
					if err := bw.WriteByte(' '); err != nil {
						return err
					}
				}
				if _, err := bw.WriteString(strconv.FormatInt(id, 10)); err != nil {
					return err
				}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		return bw.Flush()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(nonNil(seqs))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(seqs)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func nonNil(seqs []Sequence) []Sequence {
	out := make([]Sequence, len(seqs))
	for i, s := range seqs {
		out[i] = s
		if out[i].IDs == nil {
			out[i].IDs = []int64{}
		}
	}
	return out
}

// Save writes seqs to path, creating or truncating it.
func Save(path string, seqs []Sequence, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(f, seqs, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
