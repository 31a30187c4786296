// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package eureka

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	"github.com/defenseunicorns/eureka/config"
)

// OutputFormat controls how stored values are printed
type OutputFormat string

var _ pflag.Value = (*OutputFormat)(nil)

const (
	// OutputYAML prints values as a YAML document
	OutputYAML OutputFormat = "yaml"
	// OutputText prints one key=value pair per line
	OutputText OutputFormat = "text"
	// DefaultOutputFormat is used when no format is given
	DefaultOutputFormat = OutputYAML
)

// AvailableOutputFormats returns a list of available output formats
func AvailableOutputFormats() []string {
	return []string{string(OutputYAML), string(OutputText)}
}

// String implements the pflag.Value and fmt.Stringer interfaces
func (o *OutputFormat) String() string {
	return string(*o)
}

// Set implements the pflag.Value interface
func (o *OutputFormat) Set(value string) error {
	switch value {
	case string(OutputYAML):
		*o = OutputYAML
	case string(OutputText):
		*o = OutputText
	default:
		return fmt.Errorf("invalid output format: %s", value)
	}
	return nil
}

// Type implements the pflag.Value interface
func (o *OutputFormat) Type() string {
	return "string"
}

// PrintValues writes values to w in the given format, highlighting YAML when color is true
//
// Nothing is printed when values is empty.
func PrintValues(w io.Writer, values []Value, format OutputFormat, color bool) error {
	if len(values) == 0 && (format == OutputYAML || format == OutputText) {
		return nil
	}

	switch format {
	case OutputText:
		for _, v := range values {
			if _, err := fmt.Fprintf(w, "%s=%s\n", v.Key, v.Value); err != nil {
				return err
			}
		}
		return nil
	case OutputYAML:
		ms := make(yaml.MapSlice, 0, len(values))
		for _, v := range values {
			ms = append(ms, yaml.MapItem{Key: string(v.Key), Value: v.Value})
		}

		b, err := yaml.MarshalWithOptions(ms, yaml.Indent(2))
		if err != nil {
			return fmt.Errorf("failed to marshal values: %w", err)
		}

		if !color {
			_, err = w.Write(b)
			return err
		}

		style := "tokyonight-day"
		if lipgloss.HasDarkBackground() {
			style = "tokyonight-moon"
		}

		var buf strings.Builder
		if err := quick.Highlight(&buf, string(b), "yaml", "terminal256", style); err != nil {
			_, err = w.Write(b)
			return err
		}
		_, err = io.WriteString(w, buf.String())
		return err
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}

// Describe returns a markdown summary of every key, its file and its current value
func Describe(s *Store) (string, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# eureka configuration\n\nDirectory: `%s`", s.Dir())
	if !s.DirectoryExists() {
		sb.WriteString(" (not created, run `eureka init`)")
	}
	sb.WriteString("\n\n| Key | File | Value |\n| --- | --- | --- |\n")

	values, err := s.Values()
	if err != nil {
		return "", err
	}
	set := make(map[config.Key]string, len(values))
	for _, v := range values {
		set[v.Key] = v.Value
	}

	for _, k := range config.Keys() {
		value := "_not set_"
		if v, ok := set[k]; ok {
			value = "`" + strings.ReplaceAll(v, "|", `\|`) + "`"
		}
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n", k, k.FileName(), value)
	}

	return sb.String(), nil
}

// RenderMarkdown renders md for the terminal, or returns it untouched when color is false
func RenderMarkdown(md string, color bool) (string, error) {
	if !color {
		return md, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
