// Package levels loads sokoban level packs: a directory (or embedded tree) of
// .lvl files in the board text format, optionally ordered and named by a
// pack.yaml manifest.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Extension is the file extension of level files.
const Extension = ".lvl"

// ManifestFile names the optional pack manifest at the root of a pack.
const ManifestFile = "pack.yaml"

// ErrLevelNotFound is returned when a level reference matches nothing in the pack.
var ErrLevelNotFound = errors.New("level not found")

// Level is one parsed level of a pack.
type Level struct {
	ID       string
	Name     string
	Index    int    // 1-based position in the pack
	FilePath string // Path inside the pack file system
	Solution string // Known move string, may be empty
	Source   []byte
	Data     *core.Level
}

// NewState starts a fresh game on this level.
func (l Level) NewState(opts ...core.Option) *core.State {
	return core.NewState(l.Data, opts...)
}

// Size returns the board height and width.
func (l Level) Size() (height, width int) {
	return l.Data.Board.H, l.Data.Board.W
}

// Pack is an ordered set of levels.
type Pack struct {
	Name   string
	Levels []Level
}

// Len returns the number of levels.
func (p *Pack) Len() int {
	return len(p.Levels)
}

// manifest is the pack.yaml document.
type manifest struct {
	Name   string          `yaml:"name"`
	Levels []manifestEntry `yaml:"levels"`
}

type manifestEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	File     string `yaml:"file"`
	Solution string `yaml:"solution"`
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Root   string // Display name of the source, used for the default pack name and errors
	Logger *log.Logger
}

// NewLoader creates a loader for a level directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: root}
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

// LoadPack loads every level of the pack.
// With a manifest, levels come in manifest order and any unreadable entry is an
// error. Without one, every .lvl file is loaded in path order and invalid
// files are skipped with a warning.
func (l *Loader) LoadPack() (*Pack, error) {
	data, err := fs.ReadFile(l.FS, ManifestFile)
	switch {
	case err == nil:
		return l.loadManifest(data)
	case errors.Is(err, fs.ErrNotExist):
		return l.scan()
	default:
		return nil, fmt.Errorf("reading %s in %s: %w", ManifestFile, l.Root, err)
	}
}

func (l *Loader) loadManifest(data []byte) (*Pack, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s in %s: %w", ManifestFile, l.Root, err)
	}

	pack := &Pack{Name: m.Name}
	if pack.Name == "" {
		pack.Name = l.defaultName()
	}

	seen := make(map[string]bool, len(m.Levels))
	for i, entry := range m.Levels {
		if entry.File == "" {
			return nil, fmt.Errorf("%s entry %d: missing file", ManifestFile, i+1)
		}
		lvl, err := l.LoadFile(entry.File)
		if err != nil {
			return nil, err
		}
		if entry.ID != "" {
			lvl.ID = entry.ID
		}
		if entry.Name != "" {
			lvl.Name = entry.Name
		}
		lvl.Solution = entry.Solution
		if seen[lvl.ID] {
			return nil, fmt.Errorf("%s: duplicate level id %q", ManifestFile, lvl.ID)
		}
		seen[lvl.ID] = true

		lvl.Index = len(pack.Levels) + 1
		pack.Levels = append(pack.Levels, lvl)
	}

	l.logger().Debug("loaded pack", "pack", pack.Name, "levels", len(pack.Levels), "manifest", true)
	return pack, nil
}

func (l *Loader) scan() (*Pack, error) {
	var files []string
	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(path.Ext(p), Extension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by path for determinism
	sort.Strings(files)

	pack := &Pack{Name: l.defaultName()}
	for _, p := range files {
		lvl, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			l.logger().Warn("skipping level", "file", p, "err", err)
			continue
		}
		lvl.Index = len(pack.Levels) + 1
		pack.Levels = append(pack.Levels, lvl)
	}

	l.logger().Debug("loaded pack", "pack", pack.Name, "levels", len(pack.Levels), "manifest", false)
	return pack, nil
}

func (l *Loader) defaultName() string {
	name := filepath.Base(l.Root)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "Levels"
	}
	return name
}

// LoadAll loads every level of the pack in pack order.
func (l *Loader) LoadAll() ([]Level, error) {
	pack, err := l.LoadPack()
	if err != nil {
		return nil, err
	}
	return pack.Levels, nil
}

// LoadFile loads a single level file from the loader's file system.
// The level ID and name default to the file's base name.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}
	return newLevel(name, data)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in pack order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Find resolves a level reference: a level ID, or a 1-based index into the pack.
func (p *Pack) Find(ref string) (Level, error) {
	for _, lvl := range p.Levels {
		if lvl.ID == ref {
			return lvl, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(p.Levels) {
			return p.Levels[n-1], nil
		}
		return Level{}, fmt.Errorf("%w: index %d out of range 1..%d", ErrLevelNotFound, n, len(p.Levels))
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, ref)
}

// Find resolves a level reference against the loaded pack.
func (l *Loader) Find(ref string) (Level, error) {
	pack, err := l.LoadPack()
	if err != nil {
		return Level{}, err
	}
	return pack.Find(ref)
}

// ReadFile loads a level file from disk outside of any pack.
func ReadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lvl, err := newLevel(path, data)
	if err != nil {
		return Level{}, err
	}
	lvl.Index = 1
	return lvl, nil
}

func newLevel(name string, data []byte) (Level, error) {
	parsed, err := core.ParseBytes(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", name, err)
	}

	id := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return Level{
		ID:       id,
		Name:     id,
		FilePath: name,
		Source:   data,
		Data:     parsed,
	}, nil
}
