package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/glob"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type rootReport struct {
	Kind string `json:"kind" yaml:"kind" toml:"kind"`
	Text string `json:"text" yaml:"text" toml:"text"`
}

type segmentReport struct {
	Index      int    `json:"index" yaml:"index" toml:"index"`
	Kind       string `json:"kind" yaml:"kind" toml:"kind"`
	Text       string `json:"text" yaml:"text" toml:"text"`
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty" toml:"expression,omitempty"`
}

type patternReport struct {
	Pattern   string          `json:"pattern" yaml:"pattern" toml:"pattern"`
	Canonical string          `json:"canonical" yaml:"canonical" toml:"canonical"`
	Literal   bool            `json:"literal" yaml:"literal" toml:"literal"`
	Root      rootReport      `json:"root" yaml:"root" toml:"root"`
	Segments  []segmentReport `json:"segments" yaml:"segments" toml:"segments"`
}

func newPatternReport(p *glob.Pattern) patternReport {
	report := patternReport{
		Pattern:   p.Original(),
		Canonical: p.String(),
		Literal:   p.IsLiteral(),
		Root:      rootReport{Kind: p.Root().Kind().String(), Text: p.Root().String()},
		Segments:  []segmentReport{},
	}
	for i, seg := range p.Segments() {
		sr := segmentReport{Index: i, Kind: seg.Kind().String(), Text: seg.String()}
		if ps, ok := seg.(*glob.PatternSegment); ok {
			sr.Expression = ps.Expression()
		}
		report.Segments = append(report.Segments, sr)
	}
	return report
}

// RenderPattern describes a compiled pattern: its root and one row per
// segment with the regular expression pattern segments compile to.
func RenderPattern(w io.Writer, p *glob.Pattern, format Format, color bool) error {
	report := newPatternReport(p)
	if format != FormatText {
		return encode(w, format, report)
	}

	styles := NewStyles(w, color)
	lines := []string{
		styles.Label.Render("pattern:   ") + report.Pattern,
		styles.Label.Render("canonical: ") + report.Canonical,
		styles.Label.Render("root:      ") + report.Root.Kind + rootSuffix(report.Root.Text),
		styles.Label.Render("literal:   ") + strconv.FormatBool(report.Literal),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, errors.ErrOutput, "failed to write pattern")
		}
	}
	if len(report.Segments) == 0 {
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Muted).
		Headers("#", "KIND", "TEXT", "EXPRESSION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header.Padding(0, 1)
			}
			return styles.File.Padding(0, 1)
		})
	for _, seg := range report.Segments {
		t.Row(strconv.Itoa(seg.Index), seg.Kind, seg.Text, seg.Expression)
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to write pattern")
	}
	return nil
}

func rootSuffix(text string) string {
	if text == "" {
		return ""
	}
	return " (" + text + ")"
}
