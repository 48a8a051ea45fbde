package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	sdkerrors "github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/logging"
	"github.com/arthur-debert/sdkman/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Options adjusts loading
type Options struct {
	// Overrides are applied last, keyed by configuration key (KeyOffline, ...)
	Overrides map[string]interface{}
}

// Load reads the configuration from defaults, the user file, the environment
// and the given overrides.
func Load(opts Options) (Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Config{}, sdkerrors.Wrap(err, sdkerrors.ErrConfigLoad, "failed to load defaults")
	}

	// The environment is read first on its own: it decides where the user
	// file lives, and must still win over it.
	envK := koanf.New(".")
	if err := envK.Load(env.ProviderWithValue("", ".", envKey), nil); err != nil {
		return Config{}, sdkerrors.Wrap(err, sdkerrors.ErrConfigLoad, "failed to load environment")
	}

	root := envK.String(KeyDir)
	if root == "" {
		root = paths.DefaultRoot(xdg.Home)
	}
	root = paths.ExpandHome(root)

	// 2. User file
	userFile := filepath.Join(root, paths.EtcDirName, paths.ConfigFileName)
	if _, err := os.Stat(userFile); err == nil {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return Config{}, sdkerrors.Wrapf(err, sdkerrors.ErrConfigLoad, "failed to load config from %s", userFile).
				WithDetail(sdkerrors.DetailPath, userFile)
		}
		logger.Debug().Str("path", userFile).Msg("loaded user config")
	}

	// 3. Environment
	if err := k.Merge(envK); err != nil {
		return Config{}, sdkerrors.Wrap(err, sdkerrors.ErrConfigLoad, "failed to merge environment")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return Config{}, sdkerrors.Wrap(err, sdkerrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, sdkerrors.Wrap(err, sdkerrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.Root = root
	if err := postProcess(&cfg); err != nil {
		return Config{}, err
	}

	logger.Debug().
		Str("root", cfg.Root).
		Str("candidatesDir", cfg.CandidatesDir).
		Bool("online", cfg.Online()).
		Msg("configuration loaded")

	return cfg, nil
}

// envKey maps an environment variable onto a configuration key. Unknown
// and empty variables map to "" which koanf skips. Boolean variables are
// true only for the literal "true"; any other value is false.
func envKey(name, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	key := envKeys[name]
	if boolKeys[key] {
		return key, value == "true"
	}
	return key, value
}

func postProcess(cfg *Config) error {
	p, err := paths.New(cfg.Root, cfg.CandidatesDir)
	if err != nil {
		return err
	}
	cfg.Root = p.Root()
	cfg.CandidatesDir = p.CandidatesDir()
	return nil
}
