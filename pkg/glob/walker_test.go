package glob

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/filesystem"
	"github.com/arthur-debert/globwalk/pkg/paths"
	"github.com/arthur-debert/globwalk/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatch(t *testing.T, pattern string, fsys *testutil.MemoryFS, opts ...Option) []string {
	t.Helper()
	res, err := Glob(context.Background(), pattern, fsys, opts...)
	require.NoError(t, err)
	return res.Paths()
}

func workingTree(t *testing.T) *testutil.MemoryFS {
	return testutil.NewTree(t,
		"/Working/src/a.cs",
		"/Working/src/sub/b.cs",
		"/Working/docs/readme.md",
		"/Working/build.cake",
		"/Working/sub/other.cake",
	)
}

func TestMatchScenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    []Option
		want    []string
	}{
		{
			name:    "recursive with extension filter",
			pattern: "/Working/**/*.cs",
			want:    []string{"/Working/src/a.cs", "/Working/src/sub/b.cs"},
		},
		{
			name:    "wildcard does not recurse",
			pattern: "./*.cake",
			opts:    []Option{WithWorkingDirectory("/Working")},
			want:    []string{"/Working/build.cake"},
		},
		{
			name:    "relative pattern without dot",
			pattern: "*/*.cake",
			opts:    []Option{WithWorkingDirectory("/Working")},
			want:    []string{"/Working/sub/other.cake"},
		},
		{
			name:    "parent segment",
			pattern: "/Working/src/../docs/*.md",
			want:    []string{"/Working/docs/readme.md"},
		},
		{
			name:    "parent from working directory",
			pattern: "../*.cake",
			opts:    []Option{WithWorkingDirectory("/Working/src")},
			want:    []string{"/Working/build.cake"},
		},
		{
			name:    "parent above root drops the branch",
			pattern: "/../Working",
			want:    nil,
		},
		{
			name:    "recursive in the middle consumes zero levels",
			pattern: "/Working/**/build.cake",
			want:    []string{"/Working/build.cake"},
		},
		{
			name:    "directories match wildcards",
			pattern: "/Working/*",
			want:    []string{"/Working/build.cake", "/Working/docs", "/Working/src", "/Working/sub"},
		},
		{
			name:    "root only pattern denotes the root",
			pattern: "/",
			want:    []string{"/"},
		},
		{
			name:    "empty pattern denotes the working directory",
			pattern: "",
			opts:    []Option{WithWorkingDirectory("/Working/docs")},
			want:    []string{"/Working/docs"},
		},
		{
			name:    "files have no children",
			pattern: "/Working/build.cake/*",
			want:    nil,
		},
		{
			name:    "missing start directory",
			pattern: "/nowhere/**",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustMatch(t, tt.pattern, workingTree(t), tt.opts...)
			testutil.AssertSamePaths(t, tt.want, got)
		})
	}
}

func TestMatchTrailingRecursiveWildcard(t *testing.T) {
	fsys := testutil.NewTree(t,
		"/D/top.txt",
		"/D/empty/",
		"/D/x/y/deep.txt",
		"/other/skip.txt",
	)

	got := mustMatch(t, "/D/**", fsys)
	testutil.AssertSamePaths(t, []string{
		"/D",
		"/D/top.txt",
		"/D/empty",
		"/D/x",
		"/D/x/y",
		"/D/x/y/deep.txt",
	}, got)
}

func TestMatchWildcardStaysInOneSegment(t *testing.T) {
	fsys := testutil.NewTree(t,
		"/a/x/c",
		"/a/x/y/c",
		"/a/z/c/",
	)
	got := mustMatch(t, "/a/*/c", fsys)
	testutil.AssertSamePaths(t, []string{"/a/x/c", "/a/z/c"}, got)
}

func TestMatchCharacterWildcard(t *testing.T) {
	fsys := testutil.NewTree(t, "/f/file1.txt", "/f/file10.txt", "/f/file.txt", "/f/fileA.txt")
	got := mustMatch(t, "/f/file?.txt", fsys)
	testutil.AssertSamePaths(t, []string{"/f/file1.txt", "/f/fileA.txt"}, got)
}

func TestMatchDoubleStarInsideSegment(t *testing.T) {
	fsys := testutil.NewTree(t, "/t/ab", "/t/aXYb", "/t/a/b", "/t/ac")
	got := mustMatch(t, "/t/a**b", fsys)
	testutil.AssertSamePaths(t, []string{"/t/ab", "/t/aXYb"}, got)

	_, err := Glob(context.Background(), "/t/**b", fsys)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternSyntax))
}

func TestMatchCaseSensitivity(t *testing.T) {
	t.Run("insensitive root matches other case", func(t *testing.T) {
		fsys := testutil.NewCaseInsensitiveMemoryFS()
		testutil.BuildTree(t, fsys, `C:\Reports\report.txt`)
		got := mustMatch(t, "C:/Reports/*.TXT", fsys)
		assert.Equal(t, []string{"C:/Reports/report.txt"}, got)
	})

	t.Run("sensitive root does not", func(t *testing.T) {
		fsys := testutil.NewTree(t, "/Reports/report.txt")
		assert.Empty(t, mustMatch(t, "/Reports/*.TXT", fsys))
	})

	t.Run("option overrides the root default", func(t *testing.T) {
		fsys := testutil.NewTree(t, "/Reports/report.txt")
		got := mustMatch(t, "/Reports/*.TXT", fsys, WithCaseSensitivity(CaseInsensitive))
		assert.Equal(t, []string{"/Reports/report.txt"}, got)

		win := testutil.NewCaseInsensitiveMemoryFS()
		testutil.BuildTree(t, win, "C:/Reports/report.txt")
		assert.Empty(t, mustMatch(t, "C:/Reports/*.TXT", win, WithCaseSensitivity(CaseSensitive)))
	})

	t.Run("resolver overrides the root default", func(t *testing.T) {
		fsys := testutil.NewTree(t, "/Reports/report.txt")
		r := DefaultRootResolver()
		r.CaseSensitive[RootUnix] = false
		got := mustMatch(t, "/Reports/*.TXT", fsys, WithRootResolver(r))
		assert.Equal(t, []string{"/Reports/report.txt"}, got)
	})
}

func TestMatchWindowsAndUNCRoots(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.BuildTree(t, fsys,
		`C:\Users\bob\Documents\a.docx`,
		`C:\Users\amy\Documents\b.DOCX`,
		`C:\Users\amy\Music\c.docx`,
		"//server/share/logs/app.log",
		"//server/share/logs/old/app.1.log",
		"/home/bob/a.docx",
	)

	got := mustMatch(t, `c:\users\*\documents\*.DOCX`, fsys)
	testutil.AssertSamePaths(t, []string{
		"C:/Users/amy/Documents/b.DOCX",
		"C:/Users/bob/Documents/a.docx",
	}, got)

	got = mustMatch(t, `\\server\Share\**\*.LOG`, fsys)
	testutil.AssertSamePaths(t, []string{
		"//server/share/logs/app.log",
		"//server/share/logs/old/app.1.log",
	}, got)

	assert.Empty(t, mustMatch(t, "D:/**", fsys), "unknown drive yields nothing")
}

func TestMatchDeduplicatesOverlappingRecursion(t *testing.T) {
	fsys := testutil.NewTree(t, "/t/x/shared/y/shared/f.txt")

	res, err := Glob(context.Background(), "/t/**/shared/**", fsys)
	require.NoError(t, err)
	testutil.AssertSamePaths(t, []string{
		"/t/x/shared",
		"/t/x/shared/y",
		"/t/x/shared/y/shared",
		"/t/x/shared/y/shared/f.txt",
	}, res.Paths())

	seen := map[string]bool{}
	for _, p := range res.Paths() {
		assert.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
	}
}

func TestMatchRepeatedRecursionStaysBounded(t *testing.T) {
	fsys := testutil.NewTree(t, "/r/a/b/c/d/e/f.txt")

	single, err := Glob(context.Background(), "/r/**/*.txt", fsys)
	require.NoError(t, err)
	stacked, err := Glob(context.Background(), "/r/**/**/**/*.txt", fsys)
	require.NoError(t, err)

	assert.Equal(t, single.Paths(), stacked.Paths())
	// Each directory is expanded at most once per segment index.
	assert.LessOrEqual(t, stacked.Stats().DirectoriesListed, 7*5)
}

func TestMatchLiteralFastPath(t *testing.T) {
	fsys := testutil.NewTree(t, "/a/b/c.txt", "/a/b/d.txt")

	fsys.ResetStats()
	res, err := Glob(context.Background(), "/a/b/c.txt", fsys)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Path: "/a/b/c.txt"}}, res.Matches())
	assert.Zero(t, fsys.ReadDirCount(), "literal patterns must not list directories")
	assert.Zero(t, res.Stats().DirectoriesListed)

	fsys.ResetStats()
	res, err = Glob(context.Background(), "/a/b/missing.txt", fsys)
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())
	assert.Zero(t, fsys.ReadDirCount())

	res, err = Glob(context.Background(), "/a/b", fsys)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Path: "/a/b", IsDir: true}}, res.Matches())
}

func TestMatchLiteralEquivalentToExistence(t *testing.T) {
	fsys := testutil.NewTree(t, "/p/q/r.txt", "/p/s/")
	for _, p := range []string{"/p", "/p/q", "/p/q/r.txt", "/p/s", "/p/t", "/p/q/r.txt/x", "/x/y"} {
		t.Run(p, func(t *testing.T) {
			got := mustMatch(t, p, fsys)
			_, statErr := fsys.Stat(p)
			if statErr == nil {
				assert.Equal(t, []string{p}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestMatchLiteralCaseFallback(t *testing.T) {
	fsys := testutil.NewTree(t, "/docs/README.md", "/docs/other.md")

	fsys.ResetStats()
	got := mustMatch(t, "/Docs/readme.MD", fsys, WithCaseSensitivity(CaseInsensitive))
	assert.Equal(t, []string{"/docs/README.md"}, got)
	assert.Equal(t, []string{"/", "/docs"}, fsys.ReadDirCalls())

	assert.Empty(t, mustMatch(t, "/Docs/readme.MD", fsys))
}

func TestMatchDropsFailingBranches(t *testing.T) {
	fsys := testutil.NewTree(t,
		"/t/good/a.txt",
		"/t/bad/b.txt",
		"/t/bad/deeper/c.txt",
		"/t/top.txt",
	)
	fsys.WithError("/t/bad", fs.ErrPermission)

	res, err := Glob(context.Background(), "/t/**/*.txt", fsys)
	require.NoError(t, err)
	testutil.AssertSamePaths(t, []string{"/t/good/a.txt", "/t/top.txt"}, res.Paths())
	assert.Positive(t, res.Stats().BranchesDropped)

	res, err = Glob(context.Background(), "/t/bad/b.txt", fsys)
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())
	assert.Equal(t, 1, res.Stats().BranchesDropped)

	fsys.ClearErrors()
	res, err = Glob(context.Background(), "/t/**/*.txt", fsys)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Len())
}

func TestMatchIsIdempotent(t *testing.T) {
	fsys := workingTree(t)
	p := MustParse("/Working/**")

	first, err := p.Match(context.Background(), fsys)
	require.NoError(t, err)
	second, err := p.Match(context.Background(), fsys)
	require.NoError(t, err)
	assert.Equal(t, first.Sorted(), second.Sorted())
}

func bigTree(t *testing.T) *testutil.MemoryFS {
	fsys := testutil.NewMemoryFS()
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			for k := 0; k < 4; k++ {
				name := fmt.Sprintf("/big/d%d/e%d/f%d.go", i, j, k)
				require.NoError(t, fsys.WriteFile(name, 1))
			}
			require.NoError(t, fsys.WriteFile(fmt.Sprintf("/big/d%d/e%d/notes.md", i, j), 1))
		}
	}
	return fsys
}

func TestMatchParallelEqualsSequential(t *testing.T) {
	fsys := bigTree(t)
	for _, pattern := range []string{"/big/**/*.go", "/big/**", "/big/*/e?/f1.go", "/big/**/e3/**/*.md"} {
		t.Run(pattern, func(t *testing.T) {
			seq, err := Glob(context.Background(), pattern, fsys)
			require.NoError(t, err)
			par, err := Glob(context.Background(), pattern, fsys, WithParallelism(8))
			require.NoError(t, err)
			assert.NotZero(t, seq.Len())
			assert.Equal(t, seq.Sorted(), par.Sorted())
		})
	}
}

func TestMatchCancellation(t *testing.T) {
	fsys := bigTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallelism := range []int{1, 4} {
		t.Run(fmt.Sprintf("parallelism=%d", parallelism), func(t *testing.T) {
			res, err := Glob(ctx, "/big/**", fsys, WithParallelism(parallelism))
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, stderrors.Is(err, context.Canceled))
			assert.True(t, errors.IsErrorCode(err, errors.ErrCanceled))
		})
	}
}

func TestMatchPredicates(t *testing.T) {
	fsys := testutil.NewTree(t,
		"/p/src/app.js",
		"/p/node_modules/lib/index.js",
		"/p/src/node_modules/x.js",
		"/p/src/vendor/",
	)

	exclude, err := ExcludeNames([]string{"node_modules"}, true)
	require.NoError(t, err)

	fsys.ResetStats()
	got := mustMatch(t, "/p/**/*.js", fsys, WithDirectoryPredicate(exclude))
	assert.Equal(t, []string{"/p/src/app.js"}, got)
	for _, dir := range fsys.ReadDirCalls() {
		assert.NotContains(t, dir, "node_modules", "pruned directories are never listed")
	}

	onlyDirs := WithMatchPredicate(func(m Match) bool { return m.IsDir })
	got = mustMatch(t, "/p/src/*", fsys, onlyDirs)
	testutil.AssertSamePaths(t, []string{"/p/src/node_modules", "/p/src/vendor"}, got)
}

func TestMatchAll(t *testing.T) {
	fsys := workingTree(t)
	patterns := []*Pattern{
		MustParse("/Working/**/*.cs"),
		MustParse("/Working/src/*.cs"),
		MustParse("/Working/*.cake"),
	}
	res, err := MatchAll(context.Background(), patterns, fsys)
	require.NoError(t, err)
	testutil.AssertSamePaths(t, []string{
		"/Working/src/a.cs",
		"/Working/src/sub/b.cs",
		"/Working/build.cake",
	}, res.Paths())

	empty, err := MatchAll(context.Background(), nil, fsys)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestMatchWorkingDirectoryErrors(t *testing.T) {
	fsys := workingTree(t)
	_, err := Glob(context.Background(), "*.cake", fsys, WithWorkingDirectory("relative/dir"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWorkingDirectory))
}

func TestMatchUsesSuppliedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	fsys := workingTree(t)
	fsys.WithError("/Working/src", fs.ErrPermission)

	_, err := Glob(context.Background(), "/Working/**/*.cs", fsys, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Dropping branch")
	assert.Contains(t, buf.String(), "Glob match finished")
}

func TestMatchOSSymlinks(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "sub", "b.txt"), []byte("b"), 0644))
	if err := os.Symlink(filepath.Join(tmp, "sub"), filepath.Join(tmp, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	root := paths.Normalize(tmp)
	fsys := filesystem.NewOS()

	res, err := Glob(context.Background(), root+"/*/b.txt", fsys)
	require.NoError(t, err)
	testutil.AssertSamePaths(t, []string{root + "/sub/b.txt", root + "/link/b.txt"}, res.Paths())

	res, err = Glob(context.Background(), root+"/**/b.txt", fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{root + "/sub/b.txt"}, res.Paths(), "recursion does not follow links")
}

func TestMatchInsensitiveKeepsDistinctSpellings(t *testing.T) {
	fsys := testutil.NewTree(t,
		"/w/a.txt",
		"/w/A.TXT",
		"/w/Sub/x.cs",
		"/w/sub/y.cs",
	)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"/w/*.txt", []string{"/w/A.TXT", "/w/a.txt"}},
		{"/w/**/*.cs", []string{"/w/Sub/x.cs", "/w/sub/y.cs"}},
		{"/w/SUB/*.cs", []string{"/w/Sub/x.cs", "/w/sub/y.cs"}},
		{"/w/Sub/*.cs", []string{"/w/Sub/x.cs", "/w/sub/y.cs"}},
		{"/W/a.txt", []string{"/w/A.TXT", "/w/a.txt"}},
	}
	for _, tt := range tests {
		for _, parallelism := range []int{1, 4} {
			t.Run(fmt.Sprintf("%s/parallel=%d", tt.pattern, parallelism), func(t *testing.T) {
				res, err := Glob(context.Background(), tt.pattern, fsys,
					WithCaseSensitivity(CaseInsensitive), WithParallelism(parallelism))
				require.NoError(t, err)
				testutil.AssertSamePaths(t, tt.want, res.Paths())
				assert.True(t, res.CaseSensitive(), "a case-sensitive tree keeps exact keys")
			})
		}
	}

	t.Run("sensitive matching sees one spelling", func(t *testing.T) {
		assert.Equal(t, []string{"/w/sub/y.cs"}, mustMatch(t, "/w/sub/*.cs", fsys))
	})
}

func TestMatchOnCaseFoldingFS(t *testing.T) {
	fsys := testutil.NewCaseInsensitiveMemoryFS()
	testutil.BuildTree(t, fsys, "/docs/readme.md", "/docs/guide/intro.md")

	t.Run("literal reports stored spelling", func(t *testing.T) {
		fsys.ResetStats()
		got := mustMatch(t, "/DOCS/README.MD", fsys, WithCaseSensitivity(CaseInsensitive))
		assert.Equal(t, []string{"/docs/readme.md"}, got)
		assert.Zero(t, fsys.ReadDirCount(), "a folding file system answers the lookup")
	})

	t.Run("sensitive matching rejects other spelling", func(t *testing.T) {
		assert.Empty(t, mustMatch(t, "/docs/README.md", fsys))
		assert.Equal(t, []string{"/docs/readme.md"}, mustMatch(t, "/docs/readme.md", fsys))
	})

	t.Run("aliases collapse", func(t *testing.T) {
		res, err := MatchAll(context.Background(), []*Pattern{
			MustParse("/docs/**/*.md"),
			MustParse("/DOCS/Guide/*.MD"),
		}, fsys, WithCaseSensitivity(CaseInsensitive))
		require.NoError(t, err)
		assert.False(t, res.CaseSensitive())
		testutil.AssertSamePaths(t, []string{"/docs/readme.md", "/docs/guide/intro.md"}, res.Paths())
	})
}
