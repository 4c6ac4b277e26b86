// Command fsapi-log views and analyzes FSAPI protocol log files.
//
// Log files are written by fsapi-ctl when run with the -protocol-log flag.
//
// Usage:
//
//	fsapi-log <command> [flags] <file.flog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events with response bodies
//	fsapi-log view -body kitchen.flog
//
//	# View only SET exchanges
//	fsapi-log view -op set kitchen.flog
//
//	# Export volume traffic to CSV
//	fsapi-log export -format csv -resource netremote.sys.audio kitchen.flog
//
//	# Keep a single exchange
//	fsapi-log filter -exchange-id 3f1c... -o one.flog kitchen.flog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/multiroom/fsapi-go/cmd/fsapi-log/commands"
	"github.com/multiroom/fsapi-go/pkg/log"
)

const usage = `fsapi-log - FSAPI Protocol Log Analyzer

Usage:
  fsapi-log <command> [flags] <file.flog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "fsapi-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set with the shared filter flags registered.
func newFlagSet(name, summary string) (*flag.FlagSet, *commands.FilterOptions) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "fsapi-log %s - %s\n\nUsage:\n  fsapi-log %s [flags] <file%s>\n\nFlags:\n",
			name, summary, name, log.FileExtension)
		fs.PrintDefaults()
	}

	var opts commands.FilterOptions
	fs.StringVar(&opts.ExchangeID, "exchange-id", "", "Filter by exchange ID")
	fs.StringVar(&opts.Host, "host", "", "Filter by speaker host")
	fs.StringVar(&opts.Resource, "resource", "", "Filter by resource path prefix")
	fs.StringVar(&opts.Operation, "op", "", "Filter by operation (get, set, list_get_next)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter events after this time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter events before this time (RFC3339)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (transport, wire)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (message, error)")
	return fs, &opts
}

// parseArgs parses args and returns the log path and the built filter.
func parseArgs(fs *flag.FlagSet, opts *commands.FilterOptions, args []string) (string, log.Filter) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := opts.Build()
	if err != nil {
		fail(err)
	}
	return fs.Arg(0), filter
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs, opts := newFlagSet("view", "View log file in human-readable format")
	showBody := fs.Bool("body", false, "Print captured response bodies")

	path, filter := parseArgs(fs, opts, args)

	if err := commands.RunView(path, commands.ViewOptions{Filter: filter, ShowBody: *showBody}, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs, opts := newFlagSet("export", "Export log file to JSON or CSV format")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	path, filter := parseArgs(fs, opts, args)

	if err := commands.RunExport(path, *format, *output, filter); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs, opts := newFlagSet("filter", "Filter log file and write to new file")
	output := fs.String("o", "", "Output file (required)")

	path, filter := parseArgs(fs, opts, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	count, err := commands.RunFilter(path, *output, filter)
	if err != nil {
		fail(err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d events to %s\n", count, *output)
}

func runStats(args []string) {
	fs, opts := newFlagSet("stats", "Show statistics about the log file")

	path, filter := parseArgs(fs, opts, args)

	if err := commands.RunStats(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}
