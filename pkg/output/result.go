package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/glob"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// matchReport is the structured form of a result.
type matchReport struct {
	Count   int          `json:"count" yaml:"count" toml:"count"`
	Matches []glob.Match `json:"matches" yaml:"matches" toml:"matches"`
}

// RenderResult writes the result in lexicographic order.
func RenderResult(w io.Writer, result *glob.Result, format Format, color bool) error {
	return RenderMatches(w, result.Sorted(), format, color)
}

// RenderMatches writes matches in the given order. Text output prints one
// path per line and marks directories with a trailing slash.
func RenderMatches(w io.Writer, matches []glob.Match, format Format, color bool) error {
	if matches == nil {
		matches = []glob.Match{}
	}

	switch format {
	case FormatText:
		return renderMatchesText(w, matches, color)
	default:
		return encode(w, format, matchReport{Count: len(matches), Matches: matches})
	}
}

func renderMatchesText(w io.Writer, matches []glob.Match, color bool) error {
	styles := NewStyles(w, color)
	for _, m := range matches {
		line := styles.File.Render(m.Path)
		if m.IsDir {
			line = styles.Directory.Render(dirPath(m.Path))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, errors.ErrOutput, "failed to write match")
		}
	}
	return nil
}

func dirPath(p string) string {
	if len(p) > 0 && p[len(p)-1] == '/' {
		return p
	}
	return p + "/"
}

// encode writes v as json, yaml or toml.
func encode(w io.Writer, format Format, v interface{}) error {
	var err error
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		err = encoder.Encode(v)
		if err == nil {
			err = encoder.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(v)
	default:
		return errors.Newf(errors.ErrOutput, "unsupported output format %s", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutput, "failed to encode %s output", format)
	}
	return nil
}
