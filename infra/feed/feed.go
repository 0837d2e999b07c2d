// Package feed decodes schedule feed documents into their raw wire
// structures. Feeds are hand-maintained YAML files (one per area) or
// JSON payloads; decoding only establishes shape, normalization is the
// core's job.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gridwatch/loadshed/core/loadshed"
)

// Document is one decoded feed file: the area it covers plus its raw
// one-off changes and monthly recurrences.
type Document struct {
	Area              string                        `json:"area" yaml:"area"`
	Changes           []loadshed.RawShedding        `json:"changes" yaml:"changes"`
	HistoricalChanges []loadshed.RawShedding        `json:"historical_changes" yaml:"historical_changes"`
	Monthly           []loadshed.RawMonthlyShedding `json:"monthly" yaml:"monthly"`
}

// RawSchedule returns the document's one-off windows as a RawSchedule.
func (d Document) RawSchedule() loadshed.RawSchedule {
	return loadshed.RawSchedule{Changes: d.Changes, HistoricalChanges: d.HistoricalChanges}
}

// Decode reads one document from r in the given format ("yaml" or
// "json").
func Decode(r io.Reader, format string) (Document, error) {
	var doc Document
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return doc, err
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return doc, err
		}
	default:
		return doc, fmt.Errorf("unsupported format: %s", format)
	}
	return doc, nil
}

// DecodeFile loads a document from a JSON or YAML file. If the file
// does not name its area, the base file name is used.
func DecodeFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	var format string
	switch ext {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	default:
		return Document{}, fmt.Errorf("unsupported feed format: %s", ext)
	}
	doc, err := Decode(f, format)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if doc.Area == "" {
		doc.Area = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return doc, nil
}

// DecodeDir loads every feed file in dir, in file-name order. Files
// with unknown extensions are skipped.
func DecodeDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	docs := make([]Document, 0, len(names))
	for _, name := range names {
		doc, err := DecodeFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
