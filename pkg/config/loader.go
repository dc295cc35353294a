package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "GLOBWALK_"

// ProjectFiles are the file names searched in the config directory, in
// order. The first one that exists is used.
var ProjectFiles = []string{".globwalk.toml", "globwalk.toml", ".globwalk.yaml", "globwalk.yaml"}

// Load reads the defaults, the project file in dir (if any) and the
// environment. An empty dir skips the project file.
func Load(dir string) (*Config, error) {
	return load(dir, nil, true)
}

// LoadWithFlags is Load with a final layer of flag values keyed by their
// dotted config path, e.g. "match.parallelism".
func LoadWithFlags(dir string, flags map[string]interface{}) (*Config, error) {
	return load(dir, flags, true)
}

func load(dir string, flags map[string]interface{}, useEnv bool) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project file
	var loaded []string
	if dir != "" {
		path, ok := findProjectFile(dir)
		if ok {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			loaded = append(loaded, path)
			logger.Debug().Str("path", path).Msg("Loaded project config")
		}
	}

	// 3. Environment
	if useEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 4. Flags
	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag values")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Files = loaded
	normalize(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps GLOBWALK_MATCH_CASE_SENSITIVITY to match.case_sensitivity:
// the first underscore separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" {
		return ""
	}
	return section + "." + rest
}

func findProjectFile(dir string) (string, bool) {
	for _, name := range ProjectFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func loadFile(k *koanf.Koanf, path string) error {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}

	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// normalize lower-cases enumerated values and trims list entries.
func normalize(cfg *Config) {
	cfg.Match.CaseSensitivity = strings.ToLower(strings.TrimSpace(cfg.Match.CaseSensitivity))
	cfg.Match.Type = strings.ToLower(strings.TrimSpace(cfg.Match.Type))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))

	exclude := cfg.Match.Exclude[:0]
	for _, e := range cfg.Match.Exclude {
		if e = strings.TrimSpace(e); e != "" {
			exclude = append(exclude, e)
		}
	}
	cfg.Match.Exclude = exclude
}
