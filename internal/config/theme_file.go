package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultThemeFile is looked up relative to the project root.
const DefaultThemeFile = "theme.config.yml"

var (
	ErrConfigNotFound     = errors.New("theme file not found")
	ErrConfigParsing      = errors.New("theme file parsing failed")
	ErrUnsupportedFormat  = errors.New("unsupported theme file format")
	ErrInvalidPluginEntry = errors.New("invalid plugin entry")
)

// ThemeFile is the raw, undecoded shape of a theme configuration file.
//
//	content: ["./resources/views/**/*.blade.php"]
//	theme:
//	  screens: {...}     # replaces the default category
//	  extend: {...}      # merged onto the defaults
//	plugins: [forms, {name: typography, options: {className: prose}}]
type ThemeFile struct {
	Content []string       `yaml:"content" toml:"content" json:"content"`
	Theme   map[string]any `yaml:"theme" toml:"theme" json:"theme"`
	Plugins []any          `yaml:"plugins" toml:"plugins" json:"plugins"`
}

// PluginRef names a plugin and its options.
type PluginRef struct {
	Name    string
	Options map[string]any
}

// LoadThemeFile reads and decodes a theme file. The decoder is chosen by file
// extension: .yml/.yaml, .toml or .json.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file := &ThemeFile{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, file)
	case ".toml":
		err = toml.Unmarshal(data, file)
	case ".json":
		err = json.Unmarshal(data, file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	return file, nil
}

// ResolveThemePath joins a relative theme file path onto the project root.
func ResolveThemePath(root, themeFile string) string {
	if filepath.IsAbs(themeFile) || root == "" {
		return themeFile
	}
	return filepath.Join(root, themeFile)
}

// ExtendSection returns theme.extend, or nil when absent.
func (f *ThemeFile) ExtendSection() (map[string]any, error) {
	raw, ok := f.Theme["extend"]
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := asStringMap(raw)
	if !ok {
		return nil, fmt.Errorf("%w: theme.extend must be a mapping", ErrConfigParsing)
	}
	return m, nil
}

// OverrideSection returns every theme key other than extend.
func (f *ThemeFile) OverrideSection() map[string]any {
	out := make(map[string]any, len(f.Theme))
	for k, v := range f.Theme {
		if k == "extend" {
			continue
		}
		out[k] = v
	}
	return out
}

// PluginRefs normalises the plugin list. Entries are either a bare name or a
// mapping with "name" and optional "options".
func (f *ThemeFile) PluginRefs() ([]PluginRef, error) {
	refs := make([]PluginRef, 0, len(f.Plugins))
	for i, entry := range f.Plugins {
		switch e := entry.(type) {
		case string:
			refs = append(refs, PluginRef{Name: e})
		default:
			m, ok := asStringMap(e)
			if !ok {
				return nil, fmt.Errorf("%w: plugins[%d] has type %T", ErrInvalidPluginEntry, i, entry)
			}
			name, _ := m["name"].(string)
			if name == "" {
				return nil, fmt.Errorf("%w: plugins[%d] is missing a name", ErrInvalidPluginEntry, i)
			}
			ref := PluginRef{Name: name}
			if opts, ok := m["options"]; ok {
				ref.Options, ok = asStringMap(opts)
				if !ok {
					return nil, fmt.Errorf("%w: plugins[%d].options must be a mapping", ErrInvalidPluginEntry, i)
				}
			}
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
