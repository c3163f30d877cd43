// Command draftail-demo is a terminal editor built on the behavior core. It
// resolves shortcuts and filters pasted content the way the web editor does.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/iw2rmb/draftail/content"
	"github.com/iw2rmb/draftail/internal/config"
)

const welcome = "Welcome to draftail.\nType \"## \" for a heading, \"- \" for a list, \"---\" for a rule."

func main() {
	configPath := flag.StringP("config", "c", "", "editor configuration YAML")
	input := flag.StringP("open", "o", "", "raw content JSON to open")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}

	doc := content.FromText(welcome)
	if *input != "" {
		data, err := os.ReadFile(*input)
		if err != nil {
			fail(err)
		}
		if doc, err = content.FromRaw(data); err != nil {
			fail(fmt.Errorf("open %s: %w", *input, err))
		}
	}

	p := tea.NewProgram(newModel(cfg, systemClipboard{}, doc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}
