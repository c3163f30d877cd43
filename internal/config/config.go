// Package config loads editor configuration from YAML.
//
// Type descriptors are written either as a bare type name or as a mapping:
//
//	blockTypes:
//	  - header-two
//	  - type: code-block
//	    element: pre
//	inlineStyles: [BOLD, ITALIC]
//	entityTypes:
//	  - type: LINK
//	    attributes: [url]
//	    allowlist:
//	      url: "^(https?:|mailto:|/)"
//	maxListNesting: 4
//
// Environment variables are read after .env is loaded. DRAFTAIL_CONFIG names
// the file when no path is given; DRAFTAIL_MAX_LIST_NESTING,
// DRAFTAIL_ENABLE_LINE_BREAK and DRAFTAIL_ENABLE_HORIZONTAL_RULE override it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/draftail/behavior"
)

const (
	EnvConfigPath           = "DRAFTAIL_CONFIG"
	EnvMaxListNesting       = "DRAFTAIL_MAX_LIST_NESTING"
	EnvEnableLineBreak      = "DRAFTAIL_ENABLE_LINE_BREAK"
	EnvEnableHorizontalRule = "DRAFTAIL_ENABLE_HORIZONTAL_RULE"
)

// Default returns the configuration used when no file is given.
func Default() behavior.Config {
	return behavior.Config{
		BlockTypes: named(
			behavior.BlockHeaderTwo,
			behavior.BlockHeaderThree,
			behavior.BlockHeaderFour,
			behavior.BlockUnorderedListItem,
			behavior.BlockOrderedListItem,
			behavior.BlockBlockquote,
			behavior.BlockCode,
		),
		InlineStyles: named(
			behavior.StyleBold,
			behavior.StyleItalic,
			behavior.StyleCode,
			behavior.StyleUnderline,
			behavior.StyleStrikethrough,
		),
		EntityTypes: []behavior.TypeDescriptor{
			{
				Type:       behavior.EntityLink,
				Attributes: []string{"url"},
				Allowlist:  map[string]string{"url": `^(https?:|mailto:|/|#)`},
			},
			{
				Type:       behavior.EntityImage,
				Attributes: []string{"src", "alt"},
			},
		},
		MaxListNesting:       4,
		EnableLineBreak:      true,
		EnableHorizontalRule: true,
	}
}

func named(types ...string) []behavior.TypeDescriptor {
	out := make([]behavior.TypeDescriptor, 0, len(types))
	for _, t := range types {
		out = append(out, behavior.TypeDescriptor{Type: t})
	}
	return out
}

// Load reads the configuration at path, or at $DRAFTAIL_CONFIG when path is
// empty. With neither it starts from Default. Environment overrides apply in
// every case.
func Load(path string) (behavior.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return behavior.Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return behavior.Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return behavior.Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return behavior.Config{}, err
	}
	return cfg, nil
}

// Parse decodes a YAML document. Unknown keys are rejected. An empty document
// yields the zero configuration.
func Parse(data []byte) (behavior.Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return behavior.Config{}, err
	}
	return behavior.Config{
		BlockTypes:           f.BlockTypes.descriptors(),
		InlineStyles:         f.InlineStyles.descriptors(),
		EntityTypes:          f.EntityTypes.descriptors(),
		MaxListNesting:       f.MaxListNesting,
		EnableLineBreak:      f.EnableLineBreak,
		EnableHorizontalRule: f.EnableHorizontalRule,
	}, nil
}

// Marshal encodes cfg as YAML in the layout Parse reads.
func Marshal(cfg behavior.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

type file struct {
	BlockTypes           descriptorList `yaml:"blockTypes"`
	InlineStyles         descriptorList `yaml:"inlineStyles"`
	EntityTypes          descriptorList `yaml:"entityTypes"`
	MaxListNesting       int            `yaml:"maxListNesting"`
	EnableLineBreak      bool           `yaml:"enableLineBreak"`
	EnableHorizontalRule bool           `yaml:"enableHorizontalRule"`
}

type descriptorList []descriptor

func (l descriptorList) descriptors() []behavior.TypeDescriptor {
	if len(l) == 0 {
		return nil
	}
	out := make([]behavior.TypeDescriptor, 0, len(l))
	for _, d := range l {
		out = append(out, behavior.TypeDescriptor(d))
	}
	return out
}

type descriptor behavior.TypeDescriptor

// descriptorFields are the mapping keys of a descriptor. Node.Decode does not
// inherit KnownFields from the outer decoder, so they are checked here.
var descriptorFields = map[string]bool{
	"type":        true,
	"label":       true,
	"description": true,
	"icon":        true,
	"element":     true,
	"className":   true,
	"style":       true,
	"attributes":  true,
	"allowlist":   true,
}

// UnmarshalYAML accepts a bare type name as shorthand for {type: name}.
func (d *descriptor) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*d = descriptor{Type: n.Value}
		return nil
	}
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if !descriptorFields[k.Value] {
				return fmt.Errorf("line %d: field %s not found in type descriptor", k.Line, k.Value)
			}
		}
	}
	var td behavior.TypeDescriptor
	if err := n.Decode(&td); err != nil {
		return err
	}
	*d = descriptor(td)
	return nil
}

func applyEnv(cfg *behavior.Config) error {
	if v, ok := os.LookupEnv(EnvMaxListNesting); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxListNesting, err)
		}
		cfg.MaxListNesting = n
	}
	for name, dst := range map[string]*bool{
		EnvEnableLineBreak:      &cfg.EnableLineBreak,
		EnvEnableHorizontalRule: &cfg.EnableHorizontalRule,
	} {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}
