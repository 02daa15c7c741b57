package vocab

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed data
var embeddedData embed.FS

// ErrUnitNotFound is returned when a library holds no unit with the given name.
var ErrUnitNotFound = errors.New("vocab: unit not found")

const (
	extJSON     = ".json"
	extWordlist = ".txt"
)

// Library gives access to the units stored in a file system. JSON unit files
// and plain-text word lists may be mixed freely in any directory layout.
type Library struct {
	fsys fs.FS
}

// NewLibrary creates a Library over fsys.
func NewLibrary(fsys fs.FS) *Library {
	return &Library{fsys: fsys}
}

// DefaultLibrary returns the library of units shipped with the binary.
func DefaultLibrary() *Library {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(fmt.Sprintf("vocab: embedded data: %v", err))
	}
	return NewLibrary(sub)
}

// Units returns the names of all units in the library, sorted. A name is the
// slash-separated path of the file without its extension.
func (l *Library) Units() ([]string, error) {
	seen := make(map[string]bool)
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != extJSON && ext != extWordlist {
			return nil
		}
		seen[strings.TrimSuffix(p, ext)] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the named unit and normalizes it for the UI language. A JSON
// file takes precedence over a word list with the same name.
func (l *Library) Load(name, lang string) (*Unit, error) {
	name = strings.Trim(path.Clean(name), "/")

	if f, err := l.fsys.Open(name + extJSON); err == nil {
		defer f.Close()
		return DecodeUnit(f, name, lang)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open unit %q: %w", name, err)
	}

	f, err := l.fsys.Open(name + extWordlist)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnitNotFound, name)
		}
		return nil, fmt.Errorf("open unit %q: %w", name, err)
	}
	defer f.Close()
	return ParseWordlist(f, name, lang)
}
