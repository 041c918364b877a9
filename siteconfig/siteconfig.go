// Package siteconfig implements the on-disk configuration file: the
// user's full name plus a list of site records, encoded as a flat
// `key = "value"` format with one `[[sites]]` block per site.
//
// This is deliberately a small subset of TOML rather than a full TOML
// implementation: only the shapes config.rs actually produces (a
// top-level full_name key, blank-line-separated [[sites]] blocks, each
// holding a handful of string/uint32 keys) are supported.
package siteconfig

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/scode/masterpassword/sitedesc"
)

// Config is the on-disk configuration: an optional full name and the
// list of site records known to the file.
type Config struct {
	FullName string
	Sites    []sitedesc.Record
}

// ReadFile reads and parses a configuration file.
func ReadFile(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("siteconfig: reading %s: %w", path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("siteconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// WriteFile encodes cfg and writes it to path, overwriting any
// existing content.
func WriteFile(path string, cfg Config) error {
	if err := ioutil.WriteFile(path, []byte(cfg.Encode()), 0600); err != nil {
		return fmt.Errorf("siteconfig: writing %s: %w", path, err)
	}
	return nil
}

// Encode renders cfg in the on-disk format.
func (c Config) Encode() string {
	var b strings.Builder

	if c.FullName != "" {
		fmt.Fprintf(&b, "full_name = %s\n", quote(c.FullName))
	}

	for _, s := range c.Sites {
		b.WriteString("\n[[sites]]\n")
		fmt.Fprintf(&b, "name = %s\n", quote(s.Name))
		if s.Type != "" {
			fmt.Fprintf(&b, "type = %s\n", quote(s.Type))
		}
		if s.Counter != nil {
			fmt.Fprintf(&b, "counter = %d\n", *s.Counter)
		}
		if s.Variant != "" {
			fmt.Fprintf(&b, "variant = %s\n", quote(s.Variant))
		}
		if s.Context != "" {
			fmt.Fprintf(&b, "context = %s\n", quote(s.Context))
		}
		if s.Encrypted != "" {
			fmt.Fprintf(&b, "encrypted = %s\n", quote(s.Encrypted))
		}
	}

	return b.String()
}

// Decode parses the on-disk format produced by Encode.
func Decode(s string) (Config, error) {
	var cfg Config
	var current *sitedesc.Record

	closeSite := func() {
		if current != nil {
			cfg.Sites = append(cfg.Sites, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(s))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "[[sites]]" {
			closeSite()
			current = &sitedesc.Record{}
			continue
		}

		key, rawValue, err := splitAssignment(line)
		if err != nil {
			return Config{}, fmt.Errorf("siteconfig: line %d: %w", lineNo, err)
		}

		if key == "counter" {
			if current == nil {
				return Config{}, fmt.Errorf("siteconfig: line %d: counter outside a [[sites]] block", lineNo)
			}
			n, err := strconv.ParseUint(rawValue, 10, 32)
			if err != nil {
				return Config{}, fmt.Errorf("siteconfig: line %d: counter is not a valid uint32: %w", lineNo, err)
			}
			c := uint32(n)
			current.Counter = &c
			continue
		}

		value, err := unquote(rawValue)
		if err != nil {
			return Config{}, fmt.Errorf("siteconfig: line %d: value for %q: %w", lineNo, key, err)
		}

		if current == nil {
			if key != "full_name" {
				return Config{}, fmt.Errorf("siteconfig: line %d: unexpected key %q outside a [[sites]] block", lineNo, key)
			}
			cfg.FullName = value
			continue
		}

		switch key {
		case "name":
			current.Name = value
		case "type":
			current.Type = value
		case "variant":
			current.Variant = value
		case "context":
			current.Context = value
		case "encrypted":
			current.Encrypted = value
		default:
			return Config{}, fmt.Errorf("siteconfig: line %d: unknown key %q", lineNo, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("siteconfig: %w", err)
	}
	closeSite()

	return cfg, nil
}

func splitAssignment(line string) (key, rawValue string, err error) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", fmt.Errorf("expected key = value, got %q", line)
	}
	key = strings.TrimSpace(line[:idx])
	rawValue = strings.TrimSpace(line[idx+1:])
	return key, rawValue, nil
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("expected a quoted string, got %q", s)
	}
	inner := s[1 : len(s)-1]

	var b strings.Builder
	escaped := false
	for _, r := range inner {
		if escaped {
			switch r {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			default:
				return "", fmt.Errorf("unknown escape sequence \\%c", r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	if escaped {
		return "", fmt.Errorf("dangling escape character in %q", s)
	}
	return b.String(), nil
}
