package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`
	// PreserveVS keeps bundles required by an installed Visual Studio
	// non-removable.
	PreserveVS bool `mapstructure:"preserve_vs"`
	// DotnetRoot overrides the macOS install root scanned by the
	// collector. Empty means the platform default.
	DotnetRoot string `mapstructure:"dotnet_root"`
}

func Default() *Config {
	return &Config{
		LogLevel:   "info",
		LogFormat:  "text",
		PreserveVS: true,
	}
}

func Load(cfgFile string) (*Config, error) {
	cfg := Default()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dotsweep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(configDir())
		viper.AddConfigPath(".")
	}

	viper.SetDefault("preserve_vs", true)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("DOTSWEEP")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Save(cfg *Config) error {
	return SaveTo(cfg, "")
}

func SaveTo(cfg *Config, cfgFile string) error {
	viper.Set("log_level", cfg.LogLevel)
	viper.Set("log_format", cfg.LogFormat)
	viper.Set("log_file", cfg.LogFile)
	viper.Set("preserve_vs", cfg.PreserveVS)
	viper.Set("dotnet_root", cfg.DotnetRoot)

	var cfgPath string
	if cfgFile != "" {
		cfgPath = cfgFile
		dir := filepath.Dir(cfgPath)
		if dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return err
			}
		}
	} else {
		cfgPath = filepath.Join(configDir(), "dotsweep.yaml")
		if err := os.MkdirAll(configDir(), 0700); err != nil {
			return err
		}
	}

	return viper.WriteConfigAs(cfgPath)
}

func configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "dotsweep")
	case "darwin":
		return "/Library/Application Support/dotsweep"
	default:
		return "/etc/dotsweep"
	}
}
