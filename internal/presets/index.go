package presets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Index holds every preset found in a directory.
type Index struct {
	presets map[string]*Preset
	dir     string
}

// NewIndex loads all *.yaml and *.yml presets from dir, creating it if needed.
// Files that fail to parse are skipped.
func NewIndex(dir string) (*Index, error) {
	idx := &Index{
		presets: make(map[string]*Preset),
		dir:     dir,
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return idx, nil // Return empty index if can't read
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		p, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		idx.presets[p.Name] = p
	}

	return idx, nil
}

func (idx *Index) Get(name string) *Preset {
	if idx == nil {
		return nil
	}
	return idx.presets[name]
}

// All returns presets sorted by name.
func (idx *Index) All() []*Preset {
	if idx == nil {
		return nil
	}
	result := make([]*Preset, 0, len(idx.presets))
	for _, p := range idx.presets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func (idx *Index) Names() []string {
	all := idx.All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

func (idx *Index) Dir() string {
	return idx.dir
}

func (idx *Index) Count() int {
	if idx == nil {
		return 0
	}
	return len(idx.presets)
}

// Add registers p without touching disk. Pair it with Save.
func (idx *Index) Add(p *Preset) {
	idx.presets[p.Name] = p
}
