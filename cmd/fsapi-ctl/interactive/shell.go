package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/multiroom/fsapi-go/pkg/inspect"
	"github.com/multiroom/fsapi-go/pkg/model"
)

// commandNames are completed at the start of a line.
var commandNames = []string{"catalog", "dump", "get", "help", "list", "names", "quit", "raw", "set"}

// Shell runs the interactive command loop until quit, EOF or ctx is done.
func (c *Controller) Shell(ctx context.Context, cancel context.CancelFunc) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "fsapi> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer{},
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	// Route command output through readline so it does not garble the prompt.
	out := c.out
	c.out = rl.Stdout()
	defer func() { c.out = out }()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out, "Exiting...")
				cancel()
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "quit", "exit", "q":
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return nil
		}

		if err := c.Exec(ctx, parts); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

// completer completes command names and resource names.
type completer struct{}

// Do implements readline.AutoCompleter.
func (completer) Do(line []rune, pos int) ([][]rune, int) {
	return complete(string(line[:pos]))
}

func complete(typed string) ([][]rune, int) {
	fields := strings.Fields(typed)
	trailing := strings.HasSuffix(typed, " ")

	var word string
	var candidates []string

	switch {
	case len(fields) == 0 || (len(fields) == 1 && !trailing):
		if len(fields) == 1 {
			word = fields[0]
		}
		candidates = withPrefix(commandNames, word)
	case len(fields) == 1 || (len(fields) == 2 && !trailing):
		if len(fields) == 2 {
			word = fields[1]
		}
		candidates = resourceCandidates(strings.ToLower(fields[0]), word)
	default:
		return nil, 0
	}

	out := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, []rune(cand[len(word):]+" "))
	}
	return out, len([]rune(word))
}

func resourceCandidates(cmd, word string) []string {
	switch cmd {
	case "get", "read", "r":
		return withPrefix(inspect.NamesWithAccess(model.AccessRead), word)
	case "set", "write", "w":
		return withPrefix(inspect.NamesWithAccess(model.AccessWrite), word)
	case "list", "ls":
		return withPrefix(inspect.NamesWithAccess(model.AccessList), word)
	case "names":
		return inspect.Complete(word)
	default:
		return nil
	}
}

func withPrefix(names []string, prefix string) []string {
	lp := strings.ToLower(prefix)
	var out []string
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), lp) {
			out = append(out, n)
		}
	}
	return out
}
