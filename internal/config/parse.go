package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/pallet-town/internal/validator"
)

const envPrefix = "PALLET_TOWN"

// Default is the configuration used when no file is given:
// port 8000 on all interfaces, one connection at a time.
func Default() Config {
	return Config{
		Global: GlobalConfig{Env: "dev"},
		Log:    LogConfig{Level: "info"},
		Servers: ServersConfig{
			Static: StaticServerConfig{
				Addr:     ":8000",
				MaxConns: 1,
			},
		},
	}
}

// ParseAndValidate reads the TOML file over Default, applies PALLET_TOWN_*
// environment overrides and resolves the document root. An empty filename
// skips the file.
func ParseAndValidate(filename string) (Config, error) {
	conf := Default()

	var baseDir string
	if filename != "" {
		if _, err := toml.DecodeFile(filename, &conf); err != nil {
			return conf, err
		}

		abs, err := filepath.Abs(filename)
		if err != nil {
			return conf, fmt.Errorf("resolve config path: %v", err)
		}
		baseDir = filepath.Dir(abs)
	} else {
		dir, err := executableDir()
		if err != nil {
			return conf, fmt.Errorf("resolve executable dir: %v", err)
		}
		baseDir = dir
	}

	if err := envconfig.Process(envPrefix, &conf); err != nil {
		return conf, fmt.Errorf("process env: %v", err)
	}

	conf.Servers.Static.Root = resolveRoot(baseDir, conf.Servers.Static.Root)

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func resolveRoot(baseDir, root string) string {
	switch {
	case root == "":
		return baseDir
	case filepath.IsAbs(root):
		return filepath.Clean(root)
	default:
		return filepath.Join(baseDir, root)
	}
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
