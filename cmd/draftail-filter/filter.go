package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/draftail/behavior"
	"github.com/iw2rmb/draftail/content"
	"github.com/iw2rmb/draftail/preview"
)

// errChanged is returned by filter --check when filtering changed the input.
var errChanged = errors.New("content does not conform to the configuration")

const (
	formatJSON    = "json"
	formatDiff    = "diff"
	formatReport  = "report"
	formatPreview = "preview"
)

type filterOptions struct {
	format  string
	compact bool
	check   bool
	width   int
}

func (a *app) filterCmd() *cobra.Command {
	var opts filterOptions
	cmd := &cobra.Command{
		Use:   "filter [file]",
		Short: "Filter raw content JSON read from file or stdin",
		Long: `Filter restricts raw content JSON to the configured block types, inline
styles and entities, and prints the result.

Formats:
  json     filtered raw JSON (default)
  diff     line diff of a block outline before and after filtering
  report   counts of what the filter changed, as YAML
  preview  terminal rendering of the filtered document`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			return a.runFilter(name, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "output format: json, diff, report or preview")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print JSON without indentation")
	cmd.Flags().BoolVar(&opts.check, "check", false, "exit with status 2 when filtering changes the content")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "truncate preview lines to this many cells")
	return cmd
}

func (a *app) runFilter(name string, opts filterOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	data, err := a.readInput(name)
	if err != nil {
		return err
	}
	doc, err := content.FromRaw(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	filtered, rep := behavior.FilterWithReport(cfg.Vocabulary(), doc)
	a.log.Info("content filtered",
		zap.String("input", name),
		zap.Int("blocksIn", len(doc.Blocks)),
		zap.Int("blocksOut", len(filtered.Blocks)),
		zap.Bool("changed", rep.Changed()),
		zap.Int("demotedBlocks", rep.DemotedBlocks),
		zap.Int("removedAtomicBlocks", rep.RemovedAtomicBlocks),
		zap.Int("strippedStyles", rep.StrippedStyles),
		zap.Int("removedEntities", rep.RemovedEntities),
		zap.Int("replacedCharacters", rep.ReplacedCharacters),
	)

	switch opts.format {
	case formatJSON:
		out, err := content.ToRaw(filtered)
		if err != nil {
			return fmt.Errorf("encode content: %w", err)
		}
		if !opts.compact {
			out = pretty.Pretty(out)
		} else {
			out = append(out, '\n')
		}
		if _, err := a.out.Write(out); err != nil {
			return err
		}
	case formatDiff:
		r := lipgloss.NewRenderer(a.out)
		if _, err := io.WriteString(a.out, renderDiff(r, outline(doc), outline(filtered))); err != nil {
			return err
		}
	case formatReport:
		out, err := yaml.Marshal(rep)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if _, err := a.out.Write(out); err != nil {
			return err
		}
	case formatPreview:
		p := preview.New(lipgloss.NewRenderer(a.out), cfg.InlineStyles)
		p.Width = opts.width
		if _, err := fmt.Fprintln(a.out, p.Render(filtered)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	if opts.check && rep.Changed() {
		return errChanged
	}
	return nil
}

func (a *app) readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// outline describes doc one block per line: type, depth, text and the inline
// styles and entities with their rune offsets.
func outline(doc content.Document) string {
	var sb strings.Builder
	for _, b := range doc.Blocks {
		fmt.Fprintf(&sb, "%s@%d %q", b.Type, b.Depth, b.Text())
		offset := 0
		for _, r := range b.Ranges {
			n := len([]rune(r.Text))
			for _, s := range r.Styles {
				fmt.Fprintf(&sb, " %s[%d:%d]", s, offset, offset+n)
			}
			if r.EntityKey != "" {
				e, _ := doc.Entity(r.EntityKey)
				fmt.Fprintf(&sb, " %s[%d:%d]", e.Type, offset, offset+n)
			}
			offset += n
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderDiff returns a line diff of before and after, marking removed lines
// with "-" and added lines with "+".
func renderDiff(r *lipgloss.Renderer, before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	removed := r.NewStyle().Foreground(lipgloss.Color("1"))
	added := r.NewStyle().Foreground(lipgloss.Color("2"))
	same := r.NewStyle().Faint(true)

	var sb strings.Builder
	for _, d := range diffs {
		prefix, style := "  ", same
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, style = "- ", removed
		case diffmatchpatch.DiffInsert:
			prefix, style = "+ ", added
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(style.Render(prefix + strings.TrimSuffix(line, "\n")))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
