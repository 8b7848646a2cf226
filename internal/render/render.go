// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats stage documents for the terminal or for files. The
// console format keeps prompt bodies as raw copyable text between explicit
// markers; the preview format runs them through glamour for reading.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

// Format selects an output rendering.
type Format string

const (
	FormatConsole  Format = "console"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatPreview  Format = "preview"
)

// Formats lists the accepted --format values.
func Formats() []string {
	return []string{string(FormatConsole), string(FormatMarkdown), string(FormatText), string(FormatPreview)}
}

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(s, f) {
			return Format(f), nil
		}
	}
	return "", fmt.Errorf("unsupported format %q: use %s", s, strings.Join(Formats(), ", "))
}

const copyRule = "================================================================================"

// Render writes docs to w in the given format.
func Render(w io.Writer, docs []types.StageDocument, format Format) error {
	switch format {
	case FormatConsole:
		return renderConsole(w, docs)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(docs))
		return err
	case FormatText:
		_, err := io.WriteString(w, Text(docs))
		return err
	case FormatPreview:
		return renderPreview(w, docs)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// renderConsole prints each document with colored headings and raw bodies
// between copy markers, so the prompt text can be selected without ANSI
// escapes mixed in.
func renderConsole(w io.Writer, docs []types.StageDocument) error {
	for i, doc := range docs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, color.CyanString(doc.Title))
		fmt.Fprintln(w, color.New(color.Faint).Sprint(doc.Instruction))
		fmt.Fprintln(w)
		fmt.Fprintln(w, copyRule)
		fmt.Fprintln(w, color.YellowString("COPY FROM HERE"))
		fmt.Fprintln(w, copyRule)
		fmt.Fprintln(w, doc.Body)
		fmt.Fprintln(w, copyRule)
		fmt.Fprintln(w, color.YellowString("COPY TO HERE"))
		fmt.Fprintln(w, copyRule)
	}
	return nil
}

// renderPreview renders each document body as styled markdown for reading.
func renderPreview(w io.Writer, docs []types.StageDocument) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	for _, doc := range docs {
		fmt.Fprintln(w, color.CyanString(doc.Title))
		out, err := r.Render(doc.Body)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", doc.Key, err)
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

// Markdown formats docs as one markdown file, each prompt fenced so it stays
// copyable as a block.
func Markdown(docs []types.StageDocument) string {
	var b strings.Builder
	b.WriteString("# Quickstart Prompt Generator Output\n\n")
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", doc.Title)
		fmt.Fprintf(&b, "**Instructions:** %s\n\n", doc.Instruction)
		fmt.Fprintf(&b, "```\n%s\n```\n\n", doc.Body)
	}
	return b.String()
}

// Text formats docs as plain text with rule separators.
func Text(docs []types.StageDocument) string {
	var b strings.Builder
	b.WriteString("QUICKSTART PROMPT GENERATOR OUTPUT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	for i, doc := range docs {
		if i > 0 {
			b.WriteString(strings.Repeat("-", 50) + "\n\n")
		}
		b.WriteString(strings.ToUpper(doc.Title) + "\n")
		fmt.Fprintf(&b, "Instructions: %s\n\n", doc.Instruction)
		b.WriteString(doc.Body + "\n\n")
	}
	return b.String()
}

// WriteFile writes docs to path in the given format. The preview and console
// formats are terminal-only; files get markdown or text.
func WriteFile(path string, docs []types.StageDocument, format Format) error {
	var content string
	switch format {
	case FormatText:
		content = Text(docs)
	default:
		content = Markdown(docs)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}
