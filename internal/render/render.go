// Package render writes split results in the formats the CLI supports.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/cablesplit/internal/domain"
	"github.com/bft-labs/cablesplit/internal/splitter"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatTOML, FormatYAML}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of text, json, toml, yaml)", s)
}

// piecesDoc wraps pieces so TOML, which needs a table at the top level, can encode them.
type piecesDoc struct {
	Pieces []domain.Cable `json:"pieces" toml:"pieces" yaml:"pieces"`
}

// Pieces writes pieces to w in format f.
func Pieces(w io.Writer, f Format, pieces []domain.Cable) error {
	if f == FormatText {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tLENGTH")
		for _, p := range pieces {
			fmt.Fprintf(tw, "%s\t%d\n", p.Name, p.Length)
		}
		return tw.Flush()
	}
	return encode(w, f, piecesDoc{Pieces: pieces})
}

// Plan writes a split plan to w in format f.
func Plan(w io.Writer, f Format, plan splitter.Plan) error {
	if f == FormatText {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "name\t%s\n", plan.Name)
		fmt.Fprintf(tw, "segments\t%d\n", plan.Segments)
		fmt.Fprintf(tw, "base length\t%d\n", plan.BaseLength)
		fmt.Fprintf(tw, "remainder\t%d\n", plan.Remainder)
		fmt.Fprintf(tw, "total pieces\t%d\n", plan.TotalPieces)
		fmt.Fprintf(tw, "pad width\t%d\n", plan.PadWidth)
		return tw.Flush()
	}
	return encode(w, f, plan)
}

func encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
