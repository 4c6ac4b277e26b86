package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/multiroom/fsapi-go/pkg/transport"
)

// Config holds the fsapi-ctl configuration. It can be loaded from a YAML
// file and overridden by command-line flags.
type Config struct {
	Host        string        `yaml:"host"`
	PIN         string        `yaml:"pin"`
	Timeout     time.Duration `yaml:"timeout"`
	LogLevel    string        `yaml:"log_level"`
	ProtocolLog string        `yaml:"protocol_log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		PIN:      transport.DefaultPIN,
		Timeout:  transport.DefaultTimeout,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Unknown keys
// are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// TransportConfig converts the CLI configuration into a transport config.
func (c Config) TransportConfig() transport.Config {
	tc := transport.DefaultConfig()
	tc.Host = c.Host
	tc.PIN = c.PIN
	if c.Timeout > 0 {
		tc.Timeout = c.Timeout
	}
	return tc
}

// options are the flags that only affect how fsapi-ctl runs.
type options struct {
	configFile  string
	interactive bool
}

// parseArgs parses the command line. Flags explicitly given override values
// from the config file. The remaining arguments form the command.
func parseArgs(args []string, stderr io.Writer) (Config, options, []string, error) {
	fs := flag.NewFlagSet("fsapi-ctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var opts options
	var flags Config
	def := DefaultConfig()

	fs.StringVar(&opts.configFile, "config", "", "Configuration file path (YAML)")
	fs.BoolVar(&opts.interactive, "interactive", false, "Start the interactive shell")
	fs.StringVar(&flags.Host, "host", "", "Speaker address (host or host:port)")
	fs.StringVar(&flags.PIN, "pin", def.PIN, "Device PIN")
	fs.DurationVar(&flags.Timeout, "timeout", def.Timeout, "HTTP request timeout")
	fs.StringVar(&flags.LogLevel, "log-level", def.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&flags.ProtocolLog, "protocol-log", "", "Write protocol events to this file (.flog)")

	if err := fs.Parse(args); err != nil {
		return Config{}, opts, nil, err
	}

	cfg := def
	if opts.configFile != "" {
		loaded, err := LoadConfig(opts.configFile)
		if err != nil {
			return Config{}, opts, nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = flags.Host
		case "pin":
			cfg.PIN = flags.PIN
		case "timeout":
			cfg.Timeout = flags.Timeout
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "protocol-log":
			cfg.ProtocolLog = flags.ProtocolLog
		}
	})

	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, opts, nil, err
	}
	return cfg, opts, fs.Args(), nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", s)
	}
}
