package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DEFAULT_ADDR      = "0.0.0.0:8051"
	DEFAULT_DATA_PATH = "spacex_launch_dash.csv"
	DEFAULT_ENV_FILE  = ".env"
)

// Environment variables that override the defaults, flags still win over these.
const (
	ADDR_ENV   = "LAUNCHDASH_ADDR"
	DATA_ENV   = "LAUNCHDASH_DATA"
	CONFIG_ENV = "LAUNCHDASH_CONFIG"
)

type Flags struct {
	Addr       string
	DataPath   string
	ConfigPath string
	EnvFile    string
}

// BindFlags registers the dashboard flags on fs and returns the struct they're parsed into.
func BindFlags(fs *pflag.FlagSet) *Flags {
	flags := &Flags{}
	fs.StringVar(&flags.Addr, "addr", DEFAULT_ADDR, "http listen address")
	fs.StringVar(&flags.DataPath, "data", DEFAULT_DATA_PATH, "path to the launch records (.csv or .xlsx)")
	fs.StringVar(&flags.ConfigPath, "config", "", "optional dashboard config file (.yaml, .yml or .toml)")
	fs.StringVar(&flags.EnvFile, "env-file", DEFAULT_ENV_FILE, "dotenv file to load before reading the environment")
	return flags
}

// ApplyEnv loads the env file if there is one, then fills any flag that wasn't set explicitly
// from the environment.
func (f *Flags) ApplyEnv(fs *pflag.FlagSet) {
	if f.EnvFile != "" {
		if err := godotenv.Load(f.EnvFile); err != nil && !os.IsNotExist(err) {
			log.Printf("couldn't load env file %s: %s", f.EnvFile, err)
		}
	}

	fromEnv(fs, "addr", ADDR_ENV, &f.Addr)
	fromEnv(fs, "data", DATA_ENV, &f.DataPath)
	fromEnv(fs, "config", CONFIG_ENV, &f.ConfigPath)
}

func fromEnv(fs *pflag.FlagSet, name, env string, dst *string) {
	if fs != nil && fs.Changed(name) {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
