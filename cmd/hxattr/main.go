package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pthm/hxattr"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("invalid usage")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "trigger":
		return runTrigger(args, out)
	case "location":
		return runLocation(args, out)
	case "version":
		fmt.Fprintf(out, "hxattr version %s\n", version)
		return nil
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `hxattr - print HTMX response header values

Usage:
  hxattr <command> [arguments]

Commands:
  trigger name[=json]...   Print an HX-Trigger value
  location [flags] path    Print an HX-Location value
  version                  Print version
  help                     Show this help

Flags for location:
  --source, --event, --handler, --target, --swap, --select
  --values json            Values submitted with the request

Examples:
  hxattr trigger reload clearForm
  hxattr trigger reload 'update={"count":5}'
  hxattr location --target '#main' --swap innerHTML /dashboard`)
}

// runTrigger treats each argument as a simple event, or as a detailed
// event when written name=json.
func runTrigger(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("trigger: no events: %w", errUsage)
	}

	events := make([]hxattr.TriggerEvent, 0, len(args))
	for _, arg := range args {
		name, payload, ok := strings.Cut(arg, "=")
		if !ok {
			events = append(events, hxattr.Simple(name))
			continue
		}
		if !json.Valid([]byte(payload)) {
			return fmt.Errorf("trigger: payload for %q is not valid JSON", name)
		}
		events = append(events, hxattr.Detailed(name, json.RawMessage(payload)))
	}

	v, err := hxattr.EncodeTriggers(events...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}

func runLocation(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("location", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	source := fs.String("source", "", "")
	event := fs.String("event", "", "")
	handler := fs.String("handler", "", "")
	target := fs.String("target", "", "")
	swap := fs.String("swap", "", "")
	sel := fs.String("select", "", "")
	values := fs.String("values", "", "")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("location: %v: %w", err, errUsage)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("location: expected exactly one path: %w", errUsage)
	}

	loc := hxattr.NewLocation(fs.Arg(0))
	// Only flags given on the command line become fields.
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			loc = loc.WithSource(*source)
		case "event":
			loc = loc.WithEvent(*event)
		case "handler":
			loc = loc.WithHandler(*handler)
		case "target":
			loc = loc.WithTarget(*target)
		case "swap":
			loc = loc.WithSwap(hxattr.Swap(*swap))
		case "select":
			loc = loc.WithSelect(*sel)
		case "values":
			if !json.Valid([]byte(*values)) {
				visitErr = errors.New("location: --values is not valid JSON")
				return
			}
			loc = loc.WithValues(json.RawMessage(*values))
		}
	})
	if visitErr != nil {
		return visitErr
	}

	v, err := loc.Encode()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}
