package glob

import (
	"context"
	stderrors "errors"
	"io/fs"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/logging"
	"github.com/arthur-debert/globwalk/pkg/paths"
	"github.com/arthur-debert/globwalk/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Glob parses pattern and evaluates it against fsys.
func Glob(ctx context.Context, pattern string, fsys types.FS, opts ...Option) (*Result, error) {
	p, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.Match(ctx, fsys, opts...)
}

// MatchAll evaluates several patterns and returns the union of their
// matches. Paths are deduplicated the way fsys compares names.
func MatchAll(ctx context.Context, patterns []*Pattern, fsys types.FS, opts ...Option) (*Result, error) {
	merged := NewResult(!types.FoldsCase(fsys))
	for _, p := range patterns {
		res, err := p.Match(ctx, fsys, opts...)
		if err != nil {
			return nil, err
		}
		merged.Merge(res)
	}
	return merged, nil
}

// Match evaluates the pattern against fsys. Directories that cannot be read
// are skipped; the only errors are an unresolvable working directory and
// cancellation of ctx.
func (p *Pattern) Match(ctx context.Context, fsys types.FS, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	logger := o.log().With().Str("pattern", p.original).Logger()

	start, caseSensitive, err := o.resolver.Resolve(p.root, fsys)
	if err != nil {
		return nil, err
	}
	switch o.caseSensitivity {
	case CaseSensitive:
		caseSensitive = true
	case CaseInsensitive:
		caseSensitive = false
	}

	// Locations carry the spelling the file system reports, so keys only
	// fold case when the file system itself does.
	foldKeys := types.FoldsCase(fsys)
	w := &walker{
		segments:      p.segments,
		fs:            fsys,
		caseSensitive: caseSensitive,
		foldKeys:      foldKeys,
		opts:          o,
		logger:        logger,
		seen:          make(map[string]struct{}),
		result:        NewResult(!foldKeys),
	}

	done := logging.LogOperationStart(logger, "glob.match")
	defer done()

	info, err := fsys.Stat(start.String())
	w.statted.Add(1)
	if err != nil || !info.IsDir() {
		logger.Debug().Err(err).Str("root", start.String()).Msg("Start directory does not exist, nothing to match")
		w.finish()
		return w.result, nil
	}

	initial := state{loc: start, isDir: true}
	if o.parallelism > 1 {
		err = w.runParallel(ctx, initial)
	} else {
		err = w.run(ctx, initial)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCanceled, "glob match canceled").
			WithDetail("pattern", p.original)
	}

	w.finish()
	logger.Debug().
		Str("root", start.String()).
		Bool("caseSensitive", caseSensitive).
		Int("matches", w.result.Len()).
		Int64("states", w.states.Load()).
		Int64("dropped", w.dropped.Load()).
		Msg("Glob match finished")
	return w.result, nil
}

// state is one worklist entry: a location and the index of the next
// segment to match there.
type state struct {
	loc   paths.Location
	isDir bool
	index int
}

type walker struct {
	segments      []Segment
	fs            types.FS
	caseSensitive bool
	foldKeys      bool
	opts          *options
	logger        zerolog.Logger

	mu     sync.Mutex
	seen   map[string]struct{}
	result *Result

	states  atomic.Int64
	listed  atomic.Int64
	statted atomic.Int64
	dropped atomic.Int64
}

func (w *walker) finish() {
	w.result.setStats(Stats{
		States:            int(w.states.Load()),
		DirectoriesListed: int(w.listed.Load()),
		PathsStatted:      int(w.statted.Load()),
		BranchesDropped:   int(w.dropped.Load()),
	})
}

// visit marks s as expanded. It returns false when an identical state was
// already expanded through another branch, which happens whenever several
// "**" segments can consume the same directories.
func (w *walker) visit(s state) bool {
	key := strconv.Itoa(s.index) + "\x00" + s.loc.Key(!w.foldKeys)
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.seen[key]; ok {
		return false
	}
	w.seen[key] = struct{}{}
	return true
}

// run expands the worklist depth-first on the calling goroutine.
func (w *walker) run(ctx context.Context, initial state) error {
	stack := []state{initial}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !w.visit(s) {
			continue
		}
		next := w.step(s)
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}
	return nil
}

// runParallel hands successor states to new goroutines while the limit
// allows and expands them inline otherwise.
func (w *walker) runParallel(ctx context.Context, initial state) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.opts.parallelism)

	var expand func(s state) error
	expand = func(s state) error {
		stack := []state{s}
		for len(stack) > 0 {
			if err := gctx.Err(); err != nil {
				return err
			}
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !w.visit(cur) {
				continue
			}
			for _, n := range w.step(cur) {
				n := n
				if !g.TryGo(func() error { return expand(n) }) {
					stack = append(stack, n)
				}
			}
		}
		return nil
	}

	g.Go(func() error { return expand(initial) })
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return ctx.Err()
}

// step returns the successor states of s. A state with no segments left is
// a match and has no successors.
func (w *walker) step(s state) []state {
	w.states.Add(1)
	if w.logger.GetLevel() <= zerolog.TraceLevel {
		w.logger.Trace().Str("path", s.loc.String()).Int("segment", s.index).Msg("Expanding state")
	}

	if s.index >= len(w.segments) {
		w.collect(s)
		return nil
	}
	if !s.isDir {
		return nil
	}

	switch seg := w.segments[s.index].(type) {
	case LiteralSegment:
		return w.stepLiteral(s, seg)
	case *PatternSegment:
		return w.stepEnumerate(s, seg)
	case WildcardSegment:
		return w.stepEnumerate(s, seg)
	case RecursiveWildcardSegment:
		return w.stepRecursive(s)
	case ParentSegment:
		parent, ok := s.loc.Parent()
		if !ok {
			return nil
		}
		return []state{{loc: parent, isDir: true, index: s.index + 1}}
	case CurrentSegment:
		return []state{{loc: s.loc, isDir: true, index: s.index + 1}}
	default:
		w.logger.Error().Str("segment", seg.String()).Msg("Unknown segment type")
		return nil
	}
}

// stepLiteral looks the name up directly. Case-insensitive matching on a
// file system that compares names exactly has to scan the listing instead:
// "Sub" and "sub" may both exist and both match.
func (w *walker) stepLiteral(s state, seg LiteralSegment) []state {
	if !w.caseSensitive && !w.foldKeys {
		return w.stepEnumerate(s, seg)
	}

	child := s.loc.Join(seg.Text)
	info, err := w.fs.Stat(child.String())
	w.statted.Add(1)
	if err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			w.drop(child, err)
		}
		return nil
	}

	name := reportedName(info, seg.Text)
	// A case-folding file system finds "readme" for "README"; the segment
	// still decides whether that spelling matches.
	if !seg.IsMatch(name, w.caseSensitive) {
		return nil
	}
	return w.admit(s.loc.Join(name), info.IsDir(), s.index+1)
}

// reportedName returns the entry name as the file system spells it, or
// fallback when info carries no usable base name.
func reportedName(info fs.FileInfo, fallback string) string {
	name := info.Name()
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fallback
	}
	return name
}

func (w *walker) stepEnumerate(s state, seg NameMatcher) []state {
	var next []state
	for _, e := range w.list(s.loc) {
		if !seg.IsMatch(e.Name(), w.caseSensitive) {
			continue
		}
		loc := s.loc.Join(e.Name())
		next = append(next, w.admit(loc, w.entryIsDir(loc, e), s.index+1)...)
	}
	return next
}

// stepRecursive emits the zero-level continuation and one state per child
// directory that keeps "**" active. When "**" ends the pattern, files are
// matches in their own right.
func (w *walker) stepRecursive(s state) []state {
	next := []state{{loc: s.loc, isDir: true, index: s.index + 1}}
	last := s.index == len(w.segments)-1

	for _, e := range w.list(s.loc) {
		loc := s.loc.Join(e.Name())
		// Symlinked directories are not descended into here; following them
		// could loop forever.
		if e.IsDir() {
			next = append(next, w.admit(loc, true, s.index)...)
			continue
		}
		if last {
			next = append(next, w.admit(loc, w.entryIsDir(loc, e), s.index+1)...)
		}
	}
	return next
}

func (w *walker) admit(loc paths.Location, isDir bool, index int) []state {
	if isDir && w.opts.dirPredicate != nil && !w.opts.dirPredicate(Match{Path: loc.String(), IsDir: true}) {
		w.logger.Trace().Str("path", loc.String()).Msg("Directory pruned by predicate")
		return nil
	}
	return []state{{loc: loc, isDir: isDir, index: index}}
}

func (w *walker) collect(s state) {
	m := Match{Path: s.loc.String(), IsDir: s.isDir}
	if w.opts.matchPredicate != nil && !w.opts.matchPredicate(m) {
		return
	}
	w.result.addLocation(s.loc, s.isDir)
}

// list reads a directory. Errors drop the branch: the tree may change or
// deny access while it is being walked.
func (w *walker) list(loc paths.Location) []fs.DirEntry {
	entries, err := w.fs.ReadDir(loc.String())
	w.listed.Add(1)
	if err != nil {
		w.drop(loc, err)
		return nil
	}
	return entries
}

func (w *walker) drop(loc paths.Location, err error) {
	w.dropped.Add(1)
	w.logger.Debug().Err(err).Str("path", loc.String()).Msg("Dropping branch")
}

// entryIsDir resolves symlinks so that a link to a directory can be
// matched and descended by non-recursive segments.
func (w *walker) entryIsDir(loc paths.Location, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := w.fs.Stat(loc.String())
	w.statted.Add(1)
	return err == nil && info.IsDir()
}
