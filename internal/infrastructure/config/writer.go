package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EncodeConfig renders cfg as TOML with sections in alphabetical order.
// Keys keep their struct definition order; array tables stay with their
// parent section.
func EncodeConfig(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// WriteConfigOrdered writes the configuration to path, creating parent
// directories. An existing file is only replaced when overwrite is set.
func WriteConfigOrdered(cfg *Config, path string, overwrite bool) error {
	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}

	if !overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return fmt.Errorf("config file %s already exists: %w", path, fs.ErrExist)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// tableHeader matches "[name]" and indented "  [name.sub]", not "[[array]]".
var tableHeader = regexp.MustCompile(`^\s*\[([^\[\]]+)\]\s*$`)

// sortTOMLSections reorders top level and nested tables by name. Keys that
// precede the first table stay first.
func sortTOMLSections(content string) string {
	type table struct {
		name  string
		lines []string
	}

	var preamble []string
	var tables []table
	for _, line := range strings.Split(content, "\n") {
		if match := tableHeader.FindStringSubmatch(line); match != nil {
			tables = append(tables, table{name: match[1], lines: []string{line}})
			continue
		}
		if len(tables) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].name < tables[j].name
	})

	var out strings.Builder
	writeBlock := func(lines []string) {
		block := strings.TrimRight(strings.Join(lines, "\n"), "\n ")
		if block == "" {
			return
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(block)
	}
	writeBlock(preamble)
	for _, t := range tables {
		writeBlock(t.lines)
	}

	if out.Len() == 0 {
		return ""
	}
	return out.String() + "\n"
}
