package vocab

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrEmptyUnit is returned when a unit contains no item with a usable term.
var ErrEmptyUnit = errors.New("vocab: unit has no learning items")

// Unit is a named, ordered list of learning items.
type Unit struct {
	// Name identifies the unit inside its library, e.g. "de/a1/topic/food".
	Name string

	// Title is the human-readable unit title.
	Title string

	// Items is the normalized source list, in file order.
	Items []LearningItem
}

// unitFile mirrors the top level of a JSON unit file.
type unitFile struct {
	Title    string           `json:"title"`
	Language string           `json:"language"`
	Words    []map[string]any `json:"words"`
}

// DecodeUnit reads a JSON unit file, validates it against UnitSchema and
// normalizes its items for the given UI language.
func DecodeUnit(r io.Reader, name, lang string) (*Unit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read unit %q: %w", name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &SchemaError{Unit: name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	sch, err := unitSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, &SchemaError{Unit: name, Err: err}
	}

	var file unitFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode unit %q: %w", name, err)
	}

	raws := make([]RawItem, 0, len(file.Words))
	for _, w := range file.Words {
		raws = append(raws, rawFromJSON(w))
	}

	return newUnit(name, file.Title, raws, lang)
}

// rawFromJSON extracts the known fields of one JSON word object.
func rawFromJSON(w map[string]any) RawItem {
	raw := RawItem{
		Term:     stringField(w, "term"),
		Category: stringField(w, "type"),
		Fallback: stringField(w, "meaning"),
		Example:  stringField(w, "example"),
		Glosses:  make(map[string]string),
	}
	for k := range w {
		if lang, ok := strings.CutPrefix(k, "meaning_"); ok && lang != "" {
			raw.Glosses[lang] = stringField(w, k)
		}
	}
	return raw
}

func stringField(w map[string]any, key string) string {
	s, _ := w[key].(string)
	return s
}

// ParseWordlist reads a plain-text word list with one comma-separated item
// per line: "term, type, native, sentence". Lines without a comma are
// skipped. The native column is taken as the gloss for every language.
func ParseWordlist(r io.Reader, name, lang string) (*Unit, error) {
	var raws []RawItem

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.Contains(line, ",") {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		raw := RawItem{Term: parts[0]}
		if len(parts) > 1 {
			raw.Category = parts[1]
		}
		if len(parts) > 2 {
			raw.Fallback = parts[2]
		}
		if len(parts) > 3 {
			// Sentences may themselves contain commas.
			raw.Example = strings.Join(parts[3:], ", ")
		}
		raws = append(raws, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist %q: %w", name, err)
	}

	return newUnit(name, titleFromName(name), raws, lang)
}

func newUnit(name, title string, raws []RawItem, lang string) (*Unit, error) {
	items := NormalizeAll(raws, lang)
	if len(items) == 0 {
		return nil, fmt.Errorf("unit %q: %w", name, ErrEmptyUnit)
	}
	if strings.TrimSpace(title) == "" {
		title = titleFromName(name)
	}
	return &Unit{Name: name, Title: title, Items: items}, nil
}

// titleFromName derives a display title from the last path element of a
// unit name: "de/a1/topic/daily-routine" -> "daily routine".
func titleFromName(name string) string {
	base := name
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return strings.ReplaceAll(base, "-", " ")
}
