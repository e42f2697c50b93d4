package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings of the huffenc driver.
type Config struct {
	LogLevel  string
	CacheSize int
	Workers   int
	Verify    bool

	// Inputs are the texts to encode.  If empty, the driver prompts for one.
	Inputs []string
}

// Load reads an optional .env file, then the environment, then args.  Flags
// take precedence over the environment.
func Load(progName string, args []string, output io.Writer) (*Config, error) {
	_ = godotenv.Load()

	defaults, err := fromEnv()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(output)
	logLevel := fs.String("log-level", defaults.LogLevel, "log level: CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG")
	cacheSize := fs.Int("cache-size", defaults.CacheSize, "number of built encodings to keep")
	workers := fs.Int("workers", defaults.Workers, "number of inputs to encode concurrently")
	verify := fs.Bool("verify", defaults.Verify, "decode every result and compare it to the input")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:  *logLevel,
		CacheSize: *cacheSize,
		Workers:   *workers,
		Verify:    *verify,
		Inputs:    fs.Args(),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:  firstNonEmpty(strings.TrimSpace(os.Getenv("HUFFENC_LOG_LEVEL")), "INFO"),
		CacheSize: 128,
		Workers:   runtime.NumCPU(),
		Verify:    true,
	}

	var err error
	if cfg.CacheSize, err = intEnv("HUFFENC_CACHE_SIZE", cfg.CacheSize); err != nil {
		return nil, err
	}
	if cfg.Workers, err = intEnv("HUFFENC_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(os.Getenv("HUFFENC_VERIFY")); v != "" {
		if cfg.Verify, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("HUFFENC_VERIFY: %w", err)
		}
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.CacheSize <= 0 {
		return fmt.Errorf("cache size must be > 0, got %d", cfg.CacheSize)
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("workers must be > 0, got %d", cfg.Workers)
	}
	return nil
}

func intEnv(name string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
