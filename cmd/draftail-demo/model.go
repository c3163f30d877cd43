package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"

	"github.com/iw2rmb/draftail/behavior"
	"github.com/iw2rmb/draftail/content"
	"github.com/iw2rmb/draftail/internal/grapheme"
	"github.com/iw2rmb/draftail/preview"
)

const (
	cursorMark   = "▏"
	historyLimit = 100
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type snapshot struct {
	doc     content.Document
	current int
}

// model edits a document one block at a time. The cursor always sits at the
// end of the current block.
type model struct {
	vocab   behavior.Vocabulary
	binder  behavior.KeyBinder
	preview preview.Preview
	keys    KeyMap
	help    help.Model
	clip    Clipboard
	inline  []string

	doc     content.Document
	current int
	styles  map[string]bool

	undo []snapshot
	redo []snapshot

	status string
}

func newModel(cfg behavior.Config, clip Clipboard, doc content.Document) model {
	vocab := cfg.Vocabulary()
	// Terminals report Ctrl and never Meta, so the command modifier is always
	// Ctrl here.
	m := model{
		vocab:   vocab,
		binder:  behavior.NewKeyBinder(vocab, behavior.Platform{}, nil),
		preview: preview.New(lipgloss.DefaultRenderer(), cfg.InlineStyles),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		clip:    clip,
		styles:  map[string]bool{},
	}
	for _, d := range cfg.InlineStyles {
		m.inline = append(m.inline, d.Type)
	}
	m.doc = behavior.Filter(vocab, doc)
	m.current = len(m.doc.Blocks) - 1
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.preview.Width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case msg.Paste:
		m.paste(string(msg.Runes))
		return m, nil
	case key.Matches(msg, m.keys.Paste):
		text, err := m.clip.ReadText()
		if err != nil {
			m.status = "paste: " + err.Error()
			return m, nil
		}
		m.paste(text)
		return m, nil
	case key.Matches(msg, m.keys.Export):
		m.export()
		return m, nil
	case key.Matches(msg, m.keys.Indent):
		m.indent(1)
		return m, nil
	case key.Matches(msg, m.keys.Outdent):
		m.indent(-1)
		return m, nil
	}

	m.status = ""
	text := msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
	ev, ok := behavior.KeyEventFromTea(msg)
	if ok {
		res := m.binder.Resolve(ev)
		if res.Command != "" {
			m.command(res.Command)
			return m, nil
		}
		if res.Outcome == behavior.OutcomeSuppressed && !text {
			m.status = "shortcut disabled"
		}
	}
	if text && !msg.Alt {
		m.typeText(string(msg.Runes))
	}
	return m, nil
}

func (m *model) command(cmd string) {
	switch {
	case cmd == behavior.CommandUndo:
		m.undoEdit()
	case cmd == behavior.CommandRedo:
		m.redoEdit()
	case cmd == behavior.CommandSplitBlock:
		m.splitBlock()
	case cmd == behavior.CommandBackspace:
		m.backspace()
	case cmd == behavior.CommandDelete, cmd == behavior.CommandDeleteWord:
		m.status = "nothing to delete"
	case cmd == behavior.CommandBackspaceWord, cmd == behavior.CommandBackspaceToLineStart:
		m.edit(func(d *content.Document, c int) int {
			d.Blocks[c].Ranges = nil
			return c
		})
	case m.vocab.Styles.Has(cmd):
		m.styles[cmd] = !m.styles[cmd]
		state := "off"
		if m.styles[cmd] {
			state = "on"
		}
		m.status = cmd + " " + state
	case cmd == behavior.BlockUnstyled || m.vocab.Blocks.Has(cmd):
		m.toggleBlock(cmd)
	case cmd == behavior.EntityLink:
		m.link()
	default:
		m.status = "unsupported command: " + cmd
	}
}

// edit applies fn to a copy of the document and filters the result. fn returns
// the new current block index.
func (m *model) edit(fn func(d *content.Document, current int) int) {
	m.undo = append(m.undo, snapshot{doc: m.doc, current: m.current})
	if len(m.undo) > historyLimit {
		m.undo = m.undo[1:]
	}
	m.redo = nil

	doc := m.doc.Clone()
	current := fn(&doc, m.current)
	m.doc = behavior.Filter(m.vocab, doc)
	m.current = clamp(current, 0, len(m.doc.Blocks)-1)
}

func (m *model) undoEdit() {
	if len(m.undo) == 0 {
		m.status = "nothing to undo"
		return
	}
	last := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, snapshot{doc: m.doc, current: m.current})
	m.doc, m.current = last.doc, last.current
}

func (m *model) redoEdit() {
	if len(m.redo) == 0 {
		m.status = "nothing to redo"
		return
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, snapshot{doc: m.doc, current: m.current})
	m.doc, m.current = next.doc, next.current
}

func (m *model) typeText(s string) {
	block := m.doc.Blocks[m.current]
	if block.Type != behavior.BlockAtomic {
		action := m.vocab.HandleBeforeInput(block.Text()+s, block)
		switch action.Kind {
		case behavior.InputConvertBlock:
			m.edit(func(d *content.Document, c int) int {
				d.Blocks[c].Type = action.BlockType
				d.Blocks[c].Ranges = nil
				return c
			})
			return
		case behavior.InputHorizontalRule:
			m.insertRule()
			return
		}
	}

	styles := m.activeStyles()
	m.edit(func(d *content.Document, c int) int {
		if d.Blocks[c].Type == behavior.BlockAtomic {
			c = insertBlock(d, c+1, content.Block{Type: behavior.BlockUnstyled})
		}
		d.Blocks[c].Ranges = append(d.Blocks[c].Ranges, content.Range{Text: s, Styles: styles})
		return c
	})
}

func (m *model) insertRule() {
	m.edit(func(d *content.Document, c int) int {
		key := nextEntityKey(d)
		d.Entities[key] = content.Entity{Type: behavior.EntityHorizontalRule, Mutability: content.Immutable}
		d.Blocks[c].Ranges = nil
		insertBlock(d, c, content.Block{
			Type:   behavior.BlockAtomic,
			Ranges: []content.Range{{Text: " ", EntityKey: key}},
		})
		return c + 1
	})
}

func (m *model) splitBlock() {
	m.edit(func(d *content.Document, c int) int {
		cur := d.Blocks[c]
		next := content.Block{Type: behavior.BlockUnstyled}
		if behavior.IsListItem(cur.Type) {
			if cur.Text() == "" {
				d.Blocks[c].Type = behavior.BlockUnstyled
				d.Blocks[c].Depth = 0
				return c
			}
			next.Type, next.Depth = cur.Type, cur.Depth
		}
		return insertBlock(d, c+1, next)
	})
}

func (m *model) backspace() {
	block := m.doc.Blocks[m.current]
	if block.Type == behavior.BlockUnstyled && block.Text() == "" && len(m.doc.Blocks) == 1 {
		return
	}
	m.edit(func(d *content.Document, c int) int {
		b := &d.Blocks[c]
		switch {
		case b.Type != behavior.BlockAtomic && b.Text() != "":
			last := &b.Ranges[len(b.Ranges)-1]
			clusters := grapheme.Split(last.Text)
			last.Text = strings.Join(clusters[:len(clusters)-1], "")
			return c
		case behavior.IsListItem(b.Type) && b.Depth > 0:
			b.Depth--
			return c
		case b.Type != behavior.BlockUnstyled && b.Type != behavior.BlockAtomic:
			b.Type = behavior.BlockUnstyled
			return c
		}
		d.Blocks = append(d.Blocks[:c], d.Blocks[c+1:]...)
		return c - 1
	})
}

func (m *model) indent(delta int) {
	if !behavior.IsListItem(m.doc.Blocks[m.current].Type) {
		m.status = "only list items nest"
		return
	}
	m.edit(func(d *content.Document, c int) int {
		d.Blocks[c].Depth = clamp(d.Blocks[c].Depth+delta, 0, m.vocab.MaxDepth)
		return c
	})
}

func (m *model) toggleBlock(t string) {
	m.edit(func(d *content.Document, c int) int {
		b := &d.Blocks[c]
		if b.Type == t {
			b.Type = behavior.BlockUnstyled
		} else {
			b.Type = t
		}
		return c
	})
	m.status = "block: " + m.doc.Blocks[m.current].Type
}

// link turns the current block into a link to the URL on the clipboard.
func (m *model) link() {
	if m.doc.Blocks[m.current].Text() == "" {
		m.status = "nothing to link"
		return
	}
	url, err := m.clip.ReadText()
	if err != nil {
		m.status = "link: " + err.Error()
		return
	}
	url = strings.TrimSpace(url)

	m.edit(func(d *content.Document, c int) int {
		key := nextEntityKey(d)
		d.Entities[key] = content.Entity{
			Type:       behavior.EntityLink,
			Mutability: content.Mutable,
			Data:       map[string]any{"url": url},
		}
		for i := range d.Blocks[c].Ranges {
			d.Blocks[c].Ranges[i].EntityKey = key
		}
		return c
	})
	if len(m.doc.Blocks[m.current].EntityKeys()) == 0 {
		m.status = "link rejected: " + url
		return
	}
	m.status = "linked " + url
}

// paste inserts text after the current block. Raw content JSON is pasted as
// rich content; anything else as plain text. Both go through the filter.
func (m *model) paste(text string) {
	var pasted content.Document
	rich := false
	if raw := strings.TrimSpace(text); gjson.Valid(raw) && gjson.Get(raw, "blocks").IsArray() {
		if doc, err := content.FromRaw([]byte(raw)); err == nil {
			pasted, rich = doc, true
		}
	}
	if !rich {
		pasted = content.FromText(text)
	}
	pasted, rep := behavior.FilterWithReport(m.vocab, pasted)

	if !rich && len(pasted.Blocks) == 1 {
		ranges := pasted.Blocks[0].Ranges
		m.edit(func(d *content.Document, c int) int {
			if d.Blocks[c].Type == behavior.BlockAtomic {
				c = insertBlock(d, c+1, content.Block{Type: behavior.BlockUnstyled})
			}
			d.Blocks[c].Ranges = append(d.Blocks[c].Ranges, ranges...)
			return c
		})
		m.status = "pasted text"
		return
	}

	m.edit(func(d *content.Document, c int) int {
		renamed := map[string]string{}
		for _, key := range pasted.EntityKeys() {
			nk := nextEntityKey(d)
			d.Entities[nk] = pasted.Entities[key]
			renamed[key] = nk
		}

		at := c + 1
		if cur := d.Blocks[c]; cur.Type == behavior.BlockUnstyled && cur.Text() == "" {
			d.Blocks = append(d.Blocks[:c], d.Blocks[c+1:]...)
			at = c
		}
		for _, b := range pasted.Blocks {
			b.Key = ""
			for i := range b.Ranges {
				if k := b.Ranges[i].EntityKey; k != "" {
					b.Ranges[i].EntityKey = renamed[k]
				}
			}
			at = insertBlock(d, at, b) + 1
		}
		return at - 1
	})

	m.status = fmt.Sprintf("pasted %d blocks", len(pasted.Blocks))
	if rep.Changed() {
		m.status += " (filtered)"
	}
}

func (m *model) export() {
	data, err := content.ToRaw(m.doc)
	if err != nil {
		m.status = "export: " + err.Error()
		return
	}
	if err := m.clip.WriteText(string(data)); err != nil {
		m.status = "export: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %d bytes of raw JSON", len(data))
}

func (m model) activeStyles() []string {
	var out []string
	for s, on := range m.styles {
		if on {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func (m model) View() string {
	doc := m.doc.Clone()
	if m.current >= 0 && m.current < len(doc.Blocks) {
		b := &doc.Blocks[m.current]
		b.Ranges = append(b.Ranges, content.Range{Text: cursorMark, Styles: m.activeStyles()})
	}

	var sb strings.Builder
	sb.WriteString(m.preview.Render(doc))
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render(m.statusLine()))
	sb.WriteString("\n")
	if hints := m.shortcutHints(); hints != "" {
		sb.WriteString(hintStyle.Render(hints))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m model) statusLine() string {
	parts := []string{m.doc.Blocks[m.current].Type}
	if styles := m.activeStyles(); len(styles) > 0 {
		parts = append(parts, strings.Join(styles, "+"))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, " · ")
}

func (m model) shortcutHints() string {
	mac := m.binder.Platform().Mac
	var hints []string
	for _, d := range m.inline {
		if label, ok := behavior.ShortcutLabel(d, mac); ok {
			hints = append(hints, d+" "+label)
		}
	}
	return strings.Join(hints, "  ")
}

func insertBlock(d *content.Document, at int, b content.Block) int {
	at = clamp(at, 0, len(d.Blocks))
	d.Blocks = append(d.Blocks, content.Block{})
	copy(d.Blocks[at+1:], d.Blocks[at:])
	d.Blocks[at] = b
	return at
}

func nextEntityKey(d *content.Document) string {
	if d.Entities == nil {
		d.Entities = map[string]content.Entity{}
	}
	for n := 0; ; n++ {
		key := strconv.Itoa(n)
		if _, ok := d.Entities[key]; !ok {
			return key
		}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
