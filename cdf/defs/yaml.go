package defs

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// YAML definition table schema:
//
//	sections:
//	  - name: GENERAL
//	    fields:
//	      - name: Mass
//	        marker: "22 67 0B 57 AB"
//	        layout: [float]
//	        notes: Mass={float}
//
// layout may be omitted or empty for marker-only fields.

type yamlTable struct {
	Sections []yamlSection `yaml:"sections"`
}

type yamlSection struct {
	Name   string      `yaml:"name"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name   string   `yaml:"name"`
	Marker string   `yaml:"marker"`
	Layout []string `yaml:"layout"`
	Notes  string   `yaml:"notes"`
}

// Load reads a YAML definition table.
func Load(r io.Reader) (*Table, error) {
	var doc yamlTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("defs: decode table: %w", err)
	}
	var list []*Def
	for _, sec := range doc.Sections {
		if sec.Name == "" {
			return nil, fmt.Errorf("defs: section with no name")
		}
		for _, f := range sec.Fields {
			marker, err := ParseMarker(f.Marker)
			if err != nil {
				return nil, fmt.Errorf("defs: %s/%s: %w", sec.Name, f.Name, err)
			}
			layout := make(format.Layout, 0, len(f.Layout))
			for _, tag := range f.Layout {
				s, err := format.ParseScalar(tag)
				if err != nil {
					return nil, fmt.Errorf("defs: %s/%s: %w", sec.Name, f.Name, err)
				}
				layout = append(layout, s)
			}
			list = append(list, &Def{
				Name:    f.Name,
				Section: sec.Name,
				Marker:  marker,
				Layout:  layout,
				Notes:   f.Notes,
			})
		}
	}
	return NewTable(list)
}

// LoadFile reads a YAML definition table from disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
