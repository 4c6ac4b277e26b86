// Package interactive provides the command dispatcher and the interactive
// shell of fsapi-ctl.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/multiroom/fsapi-go/pkg/inspect"
	"github.com/multiroom/fsapi-go/pkg/interaction"
	"github.com/multiroom/fsapi-go/pkg/model"
)

// Command errors.
var (
	ErrUsage       = errors.New("usage")
	ErrUnknownCmd  = errors.New("unknown command")
	ErrSetRejected = errors.New("device rejected the value")
)

// Controller executes fsapi-ctl commands against one speaker.
type Controller struct {
	client    *interaction.Client
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	out       io.Writer
}

// New creates a controller writing its output to out.
func New(client *interaction.Client, out io.Writer) *Controller {
	return &Controller{
		client:    client,
		inspector: inspect.NewInspector(client),
		formatter: inspect.NewFormatter(),
		out:       out,
	}
}

// Exec runs a single command given as its arguments.
func (c *Controller) Exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	cmd := strings.ToLower(args[0])
	args = args[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()
		return nil
	case "get", "read", "r":
		return c.cmdGet(ctx, args)
	case "set", "write", "w":
		return c.cmdSet(ctx, args)
	case "list", "ls":
		return c.cmdList(ctx, args)
	case "dump":
		return c.cmdDump(ctx)
	case "catalog", "cat":
		return c.cmdCatalog(args)
	case "names":
		return c.cmdNames(args)
	case "raw":
		return c.cmdRaw(ctx, args)
	default:
		return fmt.Errorf("%w: %s (type 'help' for commands)", ErrUnknownCmd, cmd)
	}
}

func (c *Controller) printHelp() {
	fmt.Fprintln(c.out, `
FSAPI Controller Commands:
  Resources:
    get <name>...                  - Read one or more resources
    set <name> <value>             - Write a resource (bool: on/off, int, text)
    list <name> [-all]             - Read a list (first page, or every page)
    dump                           - Read every readable resource

  Catalog:
    catalog [-yaml]                - Show known resources
    names [prefix]                 - List resource names

  Diagnostics:
    raw <op> <path> [item] [k=v]   - Perform an arbitrary exchange

  General:
    help                           - Show this help
    quit                           - Exit the shell

  Names:
    short name (volume), Go name (Volume) or dotted path (netremote.sys.audio.volume)`)
}

func (c *Controller) cmdGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get <name>...", ErrUsage)
	}
	for _, name := range args {
		r, err := c.inspector.Read(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, c.formatter.FormatReading(r))
	}
	return nil
}

func (c *Controller) cmdSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: set <name> <value>", ErrUsage)
	}
	name := args[0]
	value := strings.Join(args[1:], " ")

	ok, err := c.inspector.Write(ctx, name, value)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("set %s: %w", name, ErrSetRejected)
	}
	fmt.Fprintf(c.out, "%s set to %s\n", name, value)
	return nil
}

func (c *Controller) cmdList(ctx context.Context, args []string) error {
	var name string
	all := false
	for _, a := range args {
		switch a {
		case "-all", "--all", "-a":
			all = true
		default:
			if name != "" {
				return fmt.Errorf("%w: list <name> [-all]", ErrUsage)
			}
			name = a
		}
	}
	if name == "" {
		return fmt.Errorf("%w: list <name> [-all]", ErrUsage)
	}

	res, records, err := c.inspector.List(ctx, name, all)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s (%d records):\n", res.Name, len(records))
	fmt.Fprintln(c.out, c.formatter.FormatRecords(res, records))
	return nil
}

func (c *Controller) cmdDump(ctx context.Context) error {
	readings, err := c.inspector.ReadAll(ctx)
	for _, r := range readings {
		fmt.Fprintln(c.out, c.formatter.FormatReading(r))
	}
	return err
}

// catalogEntry is the YAML form of a catalog resource.
type catalogEntry struct {
	Name        string   `yaml:"name"`
	Path        string   `yaml:"path"`
	Access      string   `yaml:"access"`
	Type        string   `yaml:"type"`
	PageSize    int      `yaml:"page_size,omitempty"`
	Fields      []string `yaml:"fields,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

func (c *Controller) cmdCatalog(args []string) error {
	asYAML := false
	for _, a := range args {
		switch a {
		case "-yaml", "--yaml":
			asYAML = true
		default:
			return fmt.Errorf("%w: catalog [-yaml]", ErrUsage)
		}
	}

	resources := model.Catalog()
	if !asYAML {
		fmt.Fprintln(c.out, c.formatter.FormatCatalog(resources))
		return nil
	}

	entries := make([]catalogEntry, 0, len(resources))
	for _, r := range resources {
		entries = append(entries, catalogEntry{
			Name:        r.Name,
			Path:        r.Path,
			Access:      r.Access.String(),
			Type:        r.Type.String(),
			PageSize:    r.PageSize,
			Fields:      r.Schema.Names(),
			Description: r.Description,
		})
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	_, err = c.out.Write(data)
	return err
}

func (c *Controller) cmdNames(args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	for _, n := range inspect.Complete(prefix) {
		fmt.Fprintln(c.out, n)
	}
	return nil
}

func (c *Controller) cmdRaw(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: raw <op> <path> [item] [k=v...]", ErrUsage)
	}
	op, path := args[0], args[1]
	rest := args[2:]

	item := ""
	if len(rest) > 0 && !strings.Contains(rest[0], "=") {
		item = rest[0]
		rest = rest[1:]
	}

	params, err := inspect.ParseParams(rest)
	if err != nil {
		return err
	}

	root, err := c.inspector.Raw(ctx, op, path, item, params)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, c.formatter.FormatNode(root))
	return nil
}
