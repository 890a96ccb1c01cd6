package control

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrFormat is returned when a required key is missing or null. Such
	// errors also match io.ErrUnexpectedEOF.
	ErrFormat = errors.New("control: malformed layout")
	// ErrUnsupportedVersion is returned for documents newer than
	// EditorVersion.
	ErrUnsupportedVersion = errors.New("control: unsupported layout version")
)

// FormatError names the required key that was missing or null.
type FormatError struct {
	Key string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("control: the key %q should not be null", e.Key)
}

func (e *FormatError) Unwrap() []error { return []error{ErrFormat, io.ErrUnexpectedEOF} }

// VersionError reports a document written by a newer editor.
type VersionError struct {
	Version   int
	Supported int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("control: layout version %d is newer than supported version %d", e.Version, e.Supported)
}

func (e *VersionError) Unwrap() error { return ErrUnsupportedVersion }

// Loader decodes layout documents.
type Loader struct {
	// Migrate brings older documents up to EditorVersion. Nil means Upgrade.
	Migrate Migration
}

// DefaultLoader migrates with Upgrade.
var DefaultLoader = Loader{}

var requiredKeys = []string{"info", "layers", "styles"}
var requiredInfoKeys = []string{"name", "author", "description", "versionName"}

// Load reads a document, rejects versions newer than EditorVersion and
// migrates older ones.
func (ld Loader) Load(r io.Reader) (Layout, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return ld.decode(b, true)
}

// LoadUnchecked reads a document without checking or migrating its version.
// Use it to inspect documents the checked path rejects.
func (ld Loader) LoadUnchecked(r io.Reader) (Layout, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return ld.decode(b, false)
}

func (ld Loader) decode(b []byte, checked bool) (Layout, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if checked {
		version, err := rawVersion(raw)
		if err != nil {
			return Layout{}, err
		}
		if version > EditorVersion {
			return Layout{}, &VersionError{Version: version, Supported: EditorVersion}
		}
	}

	if err := checkNotNull(raw); err != nil {
		return Layout{}, err
	}

	var l Layout
	if err := json.Unmarshal(b, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}

	if checked && l.EditorVersion < EditorVersion {
		migrate := ld.Migrate
		if migrate == nil {
			migrate = Upgrade
		}
		l = migrate(l)
	}
	return l, nil
}

func rawVersion(raw map[string]json.RawMessage) (int, error) {
	v, ok := raw["editorVersion"]
	if !ok || isNull(v) {
		return 0, &FormatError{Key: "editorVersion"}
	}
	var version int
	if err := json.Unmarshal(v, &version); err != nil {
		return 0, fmt.Errorf("decode editorVersion: %w", err)
	}
	return version, nil
}

func checkNotNull(raw map[string]json.RawMessage) error {
	for _, key := range requiredKeys {
		if v, ok := raw[key]; !ok || isNull(v) {
			return &FormatError{Key: key}
		}
	}
	var info map[string]json.RawMessage
	if err := json.Unmarshal(raw["info"], &info); err != nil {
		return fmt.Errorf("decode info: %w", err)
	}
	for _, key := range requiredInfoKeys {
		if v, ok := info[key]; !ok || isNull(v) {
			return &FormatError{Key: "info." + key}
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// LoadFromFile loads and migrates the document at path.
func LoadFromFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, err
	}
	defer f.Close()
	l, err := DefaultLoader.Load(f)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return l, nil
}

// LoadFromString loads and migrates a document held in memory.
func LoadFromString(s string) (Layout, error) {
	return DefaultLoader.Load(strings.NewReader(s))
}

// LoadFromFileUnchecked loads the document at path without any version
// handling.
func LoadFromFileUnchecked(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, err
	}
	defer f.Close()
	l, err := DefaultLoader.LoadUnchecked(f)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return l, nil
}

// Marshal encodes l as indented JSON. Nil lists are written as empty arrays.
func Marshal(l Layout) ([]byte, error) {
	if l.Layers == nil {
		l.Layers = []Layer{}
	}
	if l.Styles == nil {
		l.Styles = []ButtonStyle{}
	}
	return json.MarshalIndent(l, "", "  ")
}

// SaveToFile writes l to path, creating parent directories.
func SaveToFile(l Layout, path string) error {
	b, err := Marshal(l)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
