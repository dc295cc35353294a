package glob

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/globwalk/pkg/paths"
)

// Match is one matched path. Path is absolute and uses forward slashes.
type Match struct {
	Path  string `json:"path" yaml:"path" toml:"path"`
	IsDir bool   `json:"is_dir" yaml:"is_dir" toml:"is_dir"`
}

// Name returns the last element of the path.
func (m Match) Name() string {
	p := strings.TrimRight(m.Path, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 && i < len(p)-1 {
		return p[i+1:]
	}
	return m.Path
}

// Stats describes the work a match performed.
type Stats struct {
	States            int `json:"states" yaml:"states"`
	DirectoriesListed int `json:"directories_listed" yaml:"directories_listed"`
	PathsStatted      int `json:"paths_statted" yaml:"paths_statted"`
	BranchesDropped   int `json:"branches_dropped" yaml:"branches_dropped"`
}

// Result is the deduplicated set of matches of one evaluation. Insertion
// order is kept; Sorted gives a deterministic order. Methods are safe for
// concurrent use.
type Result struct {
	mu            sync.Mutex
	caseSensitive bool
	index         map[string]int
	matches       []Match
	stats         Stats
}

// NewResult creates an empty result. Paths differing only by case are
// treated as one when caseSensitive is false.
func NewResult(caseSensitive bool) *Result {
	return &Result{caseSensitive: caseSensitive, index: make(map[string]int)}
}

// CaseSensitive reports the comparison rule used for deduplication.
func (r *Result) CaseSensitive() bool { return r.caseSensitive }

func (r *Result) keyFor(path string) string {
	if loc, err := paths.Parse(path); err == nil {
		return loc.Key(r.caseSensitive)
	}
	if r.caseSensitive {
		return path
	}
	return strings.ToLower(path)
}

// Add inserts m unless an equivalent path is already present. It reports
// whether m was new.
func (r *Result) Add(m Match) bool {
	return r.add(r.keyFor(m.Path), m)
}

func (r *Result) addLocation(loc paths.Location, isDir bool) bool {
	return r.add(loc.Key(r.caseSensitive), Match{Path: loc.String(), IsDir: isDir})
}

func (r *Result) add(key string, m Match) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[key]; ok {
		return false
	}
	r.index[key] = len(r.matches)
	r.matches = append(r.matches, m)
	return true
}

// Merge adds every match of other, keeping this result's case rule.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	for _, m := range other.Matches() {
		r.Add(m)
	}
	s := other.Stats()
	r.mu.Lock()
	r.stats.States += s.States
	r.stats.DirectoriesListed += s.DirectoriesListed
	r.stats.PathsStatted += s.PathsStatted
	r.stats.BranchesDropped += s.BranchesDropped
	r.mu.Unlock()
}

// Len returns the number of distinct matches.
func (r *Result) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.matches)
}

// IsEmpty reports whether nothing matched.
func (r *Result) IsEmpty() bool { return r.Len() == 0 }

// Contains reports whether path (in any separator style) is in the result.
func (r *Result) Contains(path string) bool {
	key := r.keyFor(path)
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.index[key]
	return ok
}

// Matches returns the matches in insertion order.
func (r *Result) Matches() []Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Match, len(r.matches))
	copy(out, r.matches)
	return out
}

// Sorted returns the matches ordered lexicographically by path.
func (r *Result) Sorted() []Match {
	out := r.Matches()
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Paths returns the matched paths in insertion order.
func (r *Result) Paths() []string {
	return r.filter(func(Match) bool { return true })
}

// Files returns the matched file paths in insertion order.
func (r *Result) Files() []string {
	return r.filter(func(m Match) bool { return !m.IsDir })
}

// Directories returns the matched directory paths in insertion order.
func (r *Result) Directories() []string {
	return r.filter(func(m Match) bool { return m.IsDir })
}

func (r *Result) filter(keep func(Match) bool) []string {
	matches := r.Matches()
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if keep(m) {
			out = append(out, m.Path)
		}
	}
	return out
}

// Stats returns the traversal counters.
func (r *Result) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *Result) setStats(s Stats) {
	r.mu.Lock()
	r.stats = s
	r.mu.Unlock()
}
