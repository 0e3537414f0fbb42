// Package render formats DisplayInfo values for terminal and machine output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"displayinfo/internal/domain"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a -o flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// DisplayInfo writes info to w in the given format. Text output is styled
// only when w is a terminal.
func DisplayInfo(w io.Writer, f Format, info domain.DisplayInfo) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info.Record())
	case FormatYAML:
		return encodeYAML(w, info.Record())
	case FormatText, "":
		if IsTerminal(w) {
			_, err := fmt.Fprintln(w, Styled(info))
			return err
		}
		_, err := io.WriteString(w, Plain(info))
		return err
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

type row struct{ label, value string }

func rows(info domain.DisplayInfo) []row {
	return []row{
		{"pixels", fmt.Sprintf("%d x %d", info.WidthPixels(), info.HeightPixels())},
		{"dp", fmt.Sprintf("%.1f x %.1f", info.WidthDp(), info.HeightDp())},
		{"inches", fmt.Sprintf("%.2f x %.2f", info.WidthInch(), info.HeightInch())},
		{"diagonal", fmt.Sprintf("%s\" (%.3f)", info.Diagonal(), info.DiagonalInch())},
		{"density", info.Density().String()},
		{"category", info.Category().String()},
		{"smallest width", fmt.Sprintf("sw%ddp", info.SmallestWidthDp())},
	}
}

// Plain renders info as aligned "label: value" lines.
func Plain(info domain.DisplayInfo) string {
	var b strings.Builder
	for _, r := range rows(info) {
		fmt.Fprintf(&b, "%-15s %s\n", r.label+":", r.value)
	}
	return b.String()
}

// Styled renders info as a bordered lipgloss panel.
func Styled(info domain.DisplayInfo) string {
	lines := []string{titleStyle.Render("Display")}
	for _, r := range rows(info) {
		value := valueStyle.Render(r.value)
		if r.label == "category" {
			value = badge(r.value, categoryColors[r.value])
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), value))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// sizeView is the JSON and YAML shape of a SizeClass. The rounded diagonal
// is always the "major.minor" string.
type sizeView struct {
	WidthInch    float64 `json:"width_inch" yaml:"width_inch"`
	HeightInch   float64 `json:"height_inch" yaml:"height_inch"`
	DiagonalInch float64 `json:"diagonal_inch" yaml:"diagonal_inch"`
	Diagonal     string  `json:"diagonal" yaml:"diagonal"`
	Category     string  `json:"category" yaml:"category"`
}

func newSizeView(sc domain.SizeClass) sizeView {
	return sizeView{
		WidthInch:    sc.WidthInch,
		HeightInch:   sc.HeightInch,
		DiagonalInch: sc.DiagonalInch,
		Diagonal:     sc.Diagonal.String(),
		Category:     sc.Category.String(),
	}
}

// SizeClass renders the size-only classification.
func SizeClass(w io.Writer, f Format, sc domain.SizeClass) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newSizeView(sc))
	case FormatYAML:
		return encodeYAML(w, newSizeView(sc))
	default:
		_, err := fmt.Fprintf(w, "%-15s %.2f x %.2f\n%-15s %s\" (%.3f)\n%-15s %s\n",
			"inches:", sc.WidthInch, sc.HeightInch,
			"diagonal:", sc.Diagonal, sc.DiagonalInch,
			"category:", sc.Category)
		return err
	}
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
