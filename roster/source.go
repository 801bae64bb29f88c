// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/pingbot/models"
)

var ErrMissingModerators = errors.New(`missing top-level key "moderators"`)

// DecodeJSON reads a roster document in JSON form.
func DecodeJSON(r io.Reader) (models.Roster, error) {
	var doc models.RosterDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return checkDocument(doc)
}

// DecodeYAML reads a roster document in YAML form.
func DecodeYAML(r io.Reader) (models.Roster, error) {
	var doc models.RosterDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return checkDocument(doc)
}

func checkDocument(doc models.RosterDocument) (models.Roster, error) {
	if doc.Moderators == nil {
		return nil, ErrMissingModerators
	}
	for site, mods := range doc.Moderators {
		if site == "" {
			return nil, errors.New("empty site key")
		}
		if mods == nil {
			doc.Moderators[site] = []models.Moderator{}
		}
	}
	return doc.Moderators, nil
}

// FileSource reads a roster document from disk. Files ending in .yaml or .yml
// are parsed as YAML, anything else as JSON.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string {
	return f.Path
}

func (f FileSource) Load(ctx context.Context) (models.Roster, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, &LoadError{Source: f.Path, Err: err}
	}
	defer file.Close()

	var r models.Roster
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		r, err = DecodeYAML(file)
	default:
		r, err = DecodeJSON(file)
	}
	if err != nil {
		return nil, &LoadError{Source: f.Path, Err: err}
	}
	return r, nil
}

// WriteJSON writes r as an indented roster document.
func WriteJSON(w io.Writer, r models.Roster) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(models.RosterDocument{Moderators: r})
}

// UpdateFile replaces the moderators of the roster document at path with r,
// keeping any other top-level keys. The previous contents are copied to
// path + ".backup" first.
func UpdateFile(path string, r models.Roster) error {
	old, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path+".backup", old, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}

	var out []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc := map[string]any{}
		if err := yaml.Unmarshal(old, &doc); err != nil {
			return fmt.Errorf("decoding yaml: %w", err)
		}
		doc["moderators"] = r
		if out, err = yaml.Marshal(doc); err != nil {
			return err
		}
	default:
		doc := map[string]json.RawMessage{}
		if err := json.Unmarshal(old, &doc); err != nil {
			return fmt.Errorf("decoding json: %w", err)
		}
		mods, err := json.Marshal(r)
		if err != nil {
			return err
		}
		doc["moderators"] = mods
		if out, err = json.MarshalIndent(doc, "", "    "); err != nil {
			return err
		}
		out = append(out, '\n')
	}
	return os.WriteFile(path, out, info.Mode().Perm())
}
