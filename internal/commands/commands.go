// Package commands implements the console's "cmd <sub> [flags]" lines.
package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

const prefix = "cmd "

// ErrNotCommand is returned by Submit for a line that is neither a command nor handled by
// the registry's Fallback.
var ErrNotCommand = errors.New("not a command")

// Build defines a command's flags on fs and returns the function run after parsing.
// args are the positional arguments left after flags.
type Build func(fs *pflag.FlagSet) func(args []string) error

// Command is a subcommand. Its flag set is rebuilt on every run, so flag values never
// leak from one invocation into the next.
type Command struct {
	Name  string
	Usage string
	build Build
}

// Registry holds subcommands by name. Add commands with Register; run with Execute or Submit.
type Registry struct {
	cmds map[string]*Command
	out  io.Writer

	// Fallback, when set, handles lines without the "cmd " prefix. It reports whether it
	// recognised the line.
	Fallback func(line string) (bool, error)
}

// NewRegistry returns an empty command registry writing command output to out.
func NewRegistry(out io.Writer) *Registry {
	if out == nil {
		out = io.Discard
	}
	r := &Registry{cmds: make(map[string]*Command), out: out}
	r.Register("help", "list commands", func(*pflag.FlagSet) func([]string) error {
		return func([]string) error {
			for _, c := range r.Commands() {
				fmt.Fprintf(r.out, "cmd %s: %s\n", c.Name, c.Usage)
			}
			return nil
		}
	})
	return r
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "grid").
func (r *Registry) Register(name, usage string, build Build) {
	r.cmds[name] = &Command{Name: name, Usage: usage, build: build}
}

// Commands returns the registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, len(r.cmds))
	for _, c := range r.cmds {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Out returns the writer commands print to.
func (r *Registry) Out() io.Writer {
	return r.out
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from the command itself.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.build(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run(fs.Args())
}

// Submit handles one console line: "cmd ..." lines are executed, anything else goes to
// Fallback.
func (r *Registry) Submit(line string) error {
	line = strings.TrimSpace(line)
	if args, ok := Parse(line + " "); ok {
		return r.Execute(args)
	}
	if r.Fallback != nil {
		handled, err := r.Fallback(line)
		if handled || err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %q (try cmd help)", ErrNotCommand, line)
}
