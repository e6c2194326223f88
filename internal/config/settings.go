package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config file names.
const (
	UserFile    = "config.yaml"
	ProjectFile = ".vocabmd.yaml"
)

// EnvPrefix prefixes environment overrides, e.g. VOCABMD_DB.
const EnvPrefix = "VOCABMD"

// Setting keys. Flags use the same names with '-' for '_'.
const (
	KeyDB       = "db"
	KeyOut      = "out"
	KeyTimezone = "timezone"
	KeyMetadata = "metadata"
	KeyPerBook  = "per_book"
	KeyPerDate  = "per_date"
	KeyFolder   = "folder"
	KeyBook     = "book"
)

// Settings are the defaults commands and MCP tools fall back on.
type Settings struct {
	DB       string `mapstructure:"db"`       // vocabulary database path
	Out      string `mapstructure:"out"`      // output root for exports
	Timezone string `mapstructure:"timezone"` // empty means the local zone
	Metadata bool   `mapstructure:"metadata"` // write YAML front matter
	PerBook  bool   `mapstructure:"per_book"`
	PerDate  bool   `mapstructure:"per_date"`
	Folder   string `mapstructure:"folder"` // folder for per-date notes
	Book     string `mapstructure:"book"`   // book filter, empty for all

	// ConfigFiles lists the files that were read, lowest precedence first.
	ConfigFiles []string `mapstructure:"-"`
}

// Load resolves settings. Precedence, highest first: flags the user set,
// VOCABMD_* environment variables, ./.vocabmd.yaml, config.yaml in Dir(),
// built-in defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (Settings, error) {
	return load(flags, Files())
}

func load(flags *pflag.FlagSet, files []string) (Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyOut, ".")
	v.SetDefault(KeyTimezone, "")
	v.SetDefault(KeyMetadata, true)
	v.SetDefault(KeyPerBook, false)
	v.SetDefault(KeyPerDate, false)
	v.SetDefault(KeyFolder, "")
	v.SetDefault(KeyBook, "")

	var read []string
	for _, file := range files {
		ok, err := mergeFile(v, file)
		if err != nil {
			return Settings{}, err
		}
		if ok {
			read = append(read, file)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Settings{}, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	s.ConfigFiles = read

	var err error
	if s.DB, err = homedir.Expand(s.DB); err != nil {
		return Settings{}, fmt.Errorf("expanding db path: %w", err)
	}
	if s.Out, err = homedir.Expand(s.Out); err != nil {
		return Settings{}, fmt.Errorf("expanding out path: %w", err)
	}
	return s, nil
}

// mergeFile layers a YAML config file over what v holds. A missing file
// is skipped.
func mergeFile(v *viper.Viper, path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return true, nil
}

// bindFlags binds every setting that has a matching flag in flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	keys := []string{KeyDB, KeyOut, KeyTimezone, KeyMetadata, KeyPerBook, KeyPerDate, KeyFolder, KeyBook}
	for _, key := range keys {
		flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag --%s: %w", flag.Name, err)
		}
	}
	return nil
}
