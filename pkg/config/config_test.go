package config

import (
	"context"
	"testing"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/glob"
	"github.com/arthur-debert/globwalk/pkg/testutil"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"match type", func(c *Config) { c.Match.Type = "links" }, "match.type"},
		{"color", func(c *Config) { c.Output.Color = "sometimes" }, "output.color"},
		{"negative parallelism", func(c *Config) { c.Match.Parallelism = -2 }, "match.parallelism"},
		{"exclude with separator", func(c *Config) { c.Match.Exclude = []string{"x/y"} }, "match.exclude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.wantKey, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Match.Exclude = []string{"node_modules"}
	cfg.Files = []string{"/not/rendered.toml"}

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, out, "[match]")
	assert.Regexp(t, `case_sensitivity = ['"]auto['"]`, out)
	assert.NotContains(t, out, "rendered.toml")

	var decoded Config
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, cfg.Match, decoded.Match)
	assert.Equal(t, cfg.Output, decoded.Output)
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()
	assert.Contains(t, content, "[match]")
	assert.Contains(t, content, "# parallelism = 1")
	assert.NotContains(t, content, "\nparallelism = 1")

	assert.Equal(t, "[a]\n# x = 1\n\n# note", commentOutConfigValues("[a]\nx = 1\n\n# note"))
}

func TestGlobOptions(t *testing.T) {
	fsys := testutil.NewTree(t,
		"/repo/src/Main.go",
		"/repo/src/util/",
		"/repo/node_modules/dep/index.go",
	)

	run := func(t *testing.T, cfg *Config, pattern string) []string {
		t.Helper()
		opts, err := cfg.GlobOptions()
		require.NoError(t, err)
		res, err := glob.Glob(context.Background(), pattern, fsys, opts...)
		require.NoError(t, err)
		return res.Paths()
	}

	t.Run("exclude prunes directories", func(t *testing.T) {
		cfg := Default()
		cfg.Match.Exclude = []string{"node_modules"}
		assert.Equal(t, []string{"/repo/src/Main.go"}, run(t, cfg, "/repo/**/*.go"))
	})

	t.Run("insensitive case", func(t *testing.T) {
		cfg := Default()
		cfg.Match.CaseSensitivity = "insensitive"
		assert.Equal(t, []string{"/repo/src/Main.go"}, run(t, cfg, "/repo/src/main.GO"))
	})

	t.Run("type filters", func(t *testing.T) {
		cfg := Default()
		cfg.Match.Type = "directories"
		assert.Equal(t, []string{"/repo/src/util"}, run(t, cfg, "/repo/src/*"))

		cfg.Match.Type = "files"
		assert.Equal(t, []string{"/repo/src/Main.go"}, run(t, cfg, "/repo/src/*"))
	})

	t.Run("invalid case value", func(t *testing.T) {
		cfg := Default()
		cfg.Match.CaseSensitivity = "bogus"
		_, err := cfg.GlobOptions()
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestGlobalAccess(t *testing.T) {
	t.Cleanup(func() { Initialize(nil) })

	cfg := Default()
	cfg.Output.Format = "yaml"
	Initialize(cfg)
	assert.Equal(t, "yaml", Get().Output.Format)

	Initialize(nil)
	assert.Equal(t, "text", Get().Output.Format)
}
