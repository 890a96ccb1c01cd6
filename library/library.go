// Package library manages a directory of layout documents and remembers
// which one is selected.
package library

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/grindlemire/layerkit"
	"github.com/grindlemire/layerkit/control"
	"github.com/grindlemire/layerkit/internal/debug"
	"github.com/grindlemire/layerkit/internal/settings"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotFound is returned for a file name not in the catalog.
	ErrNotFound = errors.New("library: layout not found")
	// ErrUnsupported is returned when selecting a layout saved by a newer
	// editor.
	ErrUnsupported = errors.New("library: layout version not supported")
)

// Ext is the file extension of layout documents.
const Ext = ".json"

// loadConcurrency bounds the number of files read at once by Refresh.
const loadConcurrency = 8

// Selection persists the selected file name.
type Selection interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Entry is one layout file in the catalog.
type Entry struct {
	File      string // base name within the directory
	Layout    control.Layout
	Supported bool // false when the file was written by a newer editor
}

// Title is the default layout name, or the file name for unsupported
// entries.
func (e Entry) Title() string {
	if !e.Supported {
		return e.File
	}
	return e.Layout.Info.Name.Default
}

// Manager is a catalog over a directory of layout files. It is safe for
// concurrent use.
type Manager struct {
	dir   string
	store Selection
	log   *logrus.Entry

	mu       sync.RWMutex
	entries  []Entry
	selected string
}

// New returns a manager for dir. A nil store keeps the selection in memory.
func New(dir string, store Selection) *Manager {
	return &Manager{
		dir:   dir,
		store: store,
		log:   debug.Component("library").WithField("dir", dir),
	}
}

// Dir returns the catalog directory.
func (m *Manager) Dir() string { return m.dir }

// Path returns the full path of a file in the catalog.
func (m *Manager) Path(file string) string {
	return filepath.Join(m.dir, file)
}

// Entries returns the entries found by the last Refresh.
func (m *Manager) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.entries)
}

// Entry returns the entry for file.
func (m *Manager) Entry(file string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entryLocked(file)
}

func (m *Manager) entryLocked(file string) (Entry, bool) {
	i := slices.IndexFunc(m.entries, func(e Entry) bool { return e.File == file })
	if i < 0 {
		return Entry{}, false
	}
	return m.entries[i], true
}

// Selected returns the selected entry, if any.
func (m *Manager) Selected() (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.selected == "" {
		return Entry{}, false
	}
	return m.entryLocked(m.selected)
}

// Open wraps the layout of file for editing.
func (m *Manager) Open(file string) (*layerkit.ObservableLayout, error) {
	e, ok := m.Entry(file)
	if !ok {
		return nil, fmt.Errorf("%s: %w", file, ErrNotFound)
	}
	if !e.Supported {
		return nil, fmt.Errorf("%s: %w", file, ErrUnsupported)
	}
	return layerkit.Wrap(e.Layout), nil
}

// Refresh rescans the directory and reconciles the selection. Files that
// fail to load are logged and skipped. Files from a newer editor are listed
// as unsupported.
func (m *Manager) Refresh(ctx context.Context) error {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("create layout dir: %w", err)
	}
	files, err := m.files()
	if err != nil {
		return err
	}

	results := make([]*Entry, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = m.load(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	entries := make([]Entry, 0, len(results))
	for _, e := range results {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.Title(), b.Title()), cmp.Compare(a.File, b.File))
	})

	m.mu.Lock()
	m.entries = entries
	m.mu.Unlock()
	return m.reconcile(ctx)
}

func (m *Manager) files() ([]string, error) {
	des, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read layout dir: %w", err)
	}
	var files []string
	for _, de := range des {
		if de.Type().IsRegular() && strings.EqualFold(filepath.Ext(de.Name()), Ext) {
			files = append(files, de.Name())
		}
	}
	return files, nil
}

func (m *Manager) load(file string) *Entry {
	path := m.Path(file)
	l, err := control.LoadFromFile(path)
	if err == nil {
		return &Entry{File: file, Layout: l, Supported: true}
	}
	if !errors.Is(err, control.ErrUnsupportedVersion) {
		m.log.WithFields(logrus.Fields{"file": file, "err": err}).Warn("skipping layout")
		return nil
	}
	l, err = control.LoadFromFileUnchecked(path)
	if err != nil {
		m.log.WithFields(logrus.Fields{"file": file, "err": err}).Warn("skipping layout")
		return nil
	}
	m.log.WithField("file", file).Info("layout from a newer editor")
	return &Entry{File: file, Layout: l, Supported: false}
}

// reconcile keeps the stored selection when it is still a supported entry,
// otherwise falls back to the first supported entry, otherwise clears it.
func (m *Manager) reconcile(ctx context.Context) error {
	stored, err := m.storedSelection(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if e, ok := m.entryLocked(stored); ok && e.Supported {
		m.selected = stored
		m.mu.Unlock()
		return nil
	}
	next := ""
	for _, e := range m.entries {
		if e.Supported {
			next = e.File
			break
		}
	}
	m.selected = next
	m.mu.Unlock()

	if next == "" {
		return m.persist(ctx, "")
	}
	debug.Log("library: selection %q -> %q", stored, next)
	return m.persist(ctx, next)
}

func (m *Manager) storedSelection(ctx context.Context) (string, error) {
	if m.store == nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return m.selected, nil
	}
	v, _, err := m.store.Get(ctx, settings.KeyControlLayout)
	if err != nil {
		return "", fmt.Errorf("read selection: %w", err)
	}
	return v, nil
}

func (m *Manager) persist(ctx context.Context, file string) error {
	if m.store == nil {
		return nil
	}
	if file == "" {
		return m.store.Delete(ctx, settings.KeyControlLayout)
	}
	return m.store.Set(ctx, settings.KeyControlLayout, file)
}

// Select makes file the selected layout. It must be a supported entry.
func (m *Manager) Select(ctx context.Context, file string) error {
	m.mu.Lock()
	e, ok := m.entryLocked(file)
	switch {
	case !ok:
		m.mu.Unlock()
		return fmt.Errorf("%s: %w", file, ErrNotFound)
	case !e.Supported:
		m.mu.Unlock()
		return fmt.Errorf("%s: %w", file, ErrUnsupported)
	}
	m.selected = file
	m.mu.Unlock()
	return m.persist(ctx, file)
}

// Save writes l to file and refreshes. A failed write removes the file.
func (m *Manager) Save(ctx context.Context, file string, l *layerkit.ObservableLayout) error {
	path := m.Path(file)
	if err := control.SaveToFile(l.Pack(), path); err != nil {
		m.log.WithFields(logrus.Fields{"file": file, "err": err}).Warn("save failed")
		os.Remove(path)
		return fmt.Errorf("save %s: %w", file, err)
	}
	return m.Refresh(ctx)
}

// Delete removes file and refreshes.
func (m *Manager) Delete(ctx context.Context, file string) error {
	if _, ok := m.Entry(file); !ok {
		return fmt.Errorf("%s: %w", file, ErrNotFound)
	}
	if err := os.Remove(m.Path(file)); err != nil {
		return fmt.Errorf("delete %s: %w", file, err)
	}
	return m.Refresh(ctx)
}

// Import loads a layout from r, stores it under a new random file name and
// refreshes. It returns the new file name.
func (m *Manager) Import(ctx context.Context, r io.Reader) (string, error) {
	l, err := control.DefaultLoader.Load(r)
	if err != nil {
		return "", fmt.Errorf("import: %w", err)
	}
	file, err := m.write(l)
	if err != nil {
		return "", fmt.Errorf("import: %w", err)
	}
	return file, m.Refresh(ctx)
}

// EnsureDefault writes data as a new layout when the directory holds no
// layout files. It returns the file written, or "" when nothing was done.
func (m *Manager) EnsureDefault(ctx context.Context, data []byte) (string, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("create layout dir: %w", err)
	}
	files, err := m.files()
	if err != nil {
		return "", err
	}
	if len(files) > 0 {
		return "", nil
	}
	file := newFileName()
	if err := os.WriteFile(m.Path(file), data, 0644); err != nil {
		os.Remove(m.Path(file))
		return "", fmt.Errorf("write default layout: %w", err)
	}
	return file, m.Refresh(ctx)
}

func (m *Manager) write(l control.Layout) (string, error) {
	file := newFileName()
	if err := control.SaveToFile(l, m.Path(file)); err != nil {
		os.Remove(m.Path(file))
		return "", err
	}
	return file, nil
}

func newFileName() string {
	return control.RandomFileName(8) + Ext
}

var _ Selection = (*settings.Store)(nil)
