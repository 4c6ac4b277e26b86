// Command fsapi-ctl reads and controls FSAPI multi-room speakers.
//
// Usage:
//
//	fsapi-ctl [flags] <command> [args]
//
// Flags:
//
//	-config string        Configuration file path (YAML)
//	-host string          Speaker address (host or host:port)
//	-pin string           Device PIN (default "1234")
//	-timeout duration     HTTP request timeout (default 5s)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  Write protocol events to this file (.flog)
//	-interactive          Start the interactive shell
//
// Examples:
//
//	# Read the volume
//	fsapi-ctl -host 192.168.1.20 get volume
//
//	# Switch the speaker on
//	fsapi-ctl -host 192.168.1.20 set power on
//
//	# Fetch every preset and record the exchanges
//	fsapi-ctl -host 192.168.1.20 -protocol-log kitchen.flog list presets -all
//
//	# Interactive shell using a config file
//	fsapi-ctl -config ~/.fsapi.yaml -interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/multiroom/fsapi-go/cmd/fsapi-ctl/interactive"
	"github.com/multiroom/fsapi-go/pkg/interaction"
	"github.com/multiroom/fsapi-go/pkg/log"
)

const usage = `fsapi-ctl - FSAPI speaker controller

Usage:
  fsapi-ctl [flags] <command> [args]

Commands:
  get <name>...                  Read resources
  set <name> <value>             Write a resource
  list <name> [-all]             Read a list (first page, or every page)
  dump                           Read every readable resource
  catalog [-yaml]                Show known resources
  raw <op> <path> [item] [k=v]   Perform an arbitrary exchange

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code. Every
// path returns through here so the protocol log is always closed.
func run(argv []string, stdout, stderr io.Writer) int {
	cfg, opts, args, err := parseArgs(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if len(args) == 0 && !opts.interactive {
		fmt.Fprint(stderr, usage)
		return 2
	}

	level, _ := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Exchanges reach slog through the protocol logger only.
	tc := cfg.TransportConfig()

	protocolLogger, closeLog, err := setupProtocolLog(cfg, logger)
	if err != nil {
		logger.Error("failed to open protocol log", "path", cfg.ProtocolLog, "error", err)
		return 1
	}
	defer closeLog()
	tc.ProtocolLogger = protocolLogger

	client, err := interaction.NewClient(tc)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctl := interactive.New(client, stdout)

	if opts.interactive {
		if err := ctl.Shell(ctx, cancel); err != nil {
			logger.Error("interactive shell failed", "error", err)
			return 1
		}
		return 0
	}

	if err := ctl.Exec(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupProtocolLog combines the protocol loggers the configuration asks for:
// a CBOR file when protocol_log is set and slog output at debug level.
func setupProtocolLog(cfg Config, logger *slog.Logger) (log.Logger, func(), error) {
	var loggers []log.Logger
	closeFn := func() {}

	if cfg.ProtocolLog != "" {
		fl, err := log.NewFileLogger(cfg.ProtocolLog)
		if err != nil {
			return nil, closeFn, err
		}
		loggers = append(loggers, fl)
		closeFn = func() { _ = fl.Close() }
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}

	if len(loggers) == 0 {
		return nil, closeFn, nil
	}
	return log.NewMultiLogger(loggers...), closeFn, nil
}
