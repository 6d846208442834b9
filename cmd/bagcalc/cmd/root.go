// Package cmd implements the bagcalc CLI commands.
//
// A root command dispatches to subcommands (union, intersection, disjunction,
// subtract, compare, cardinality), each of which reads two bags from a YAML
// document and prints its result.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Output streams; tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "bagcalc",
	Short: "bagcalc - multiset algebra from the command line",
	Long: `bagcalc applies bag (multiset) operations to two sequences read
from a YAML document with the keys "a" and "b".

Use "bagcalc <command> --help" for more information about a command.`,
	Usage: "bagcalc <command> [flags] <input.yaml>",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments, without the program name.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	format = formatYAML

	// Handle global flags and extract --format
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "bagcalc version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--format":
			if i+1 >= len(args) {
				return fmt.Errorf("--format requires yaml or json")
			}
			if err := setFormat(args[i+1]); err != nil {
				return err
			}
			i++
		default:
			if value, ok := strings.CutPrefix(arg, "--format="); ok {
				if err := setFormat(value); err != nil {
					return err
				}
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs, help := splitHelp(args[1:])
	if help {
		printCommandHelp(cmd)
		return nil
	}

	return cmd.Run(cmdArgs)
}

// splitHelp reports whether a subcommand's args ask for help. -h and --help
// count anywhere before a "--" terminator, which is dropped; a bare "help"
// counts only as the sole argument, so it can still name an element.
func splitHelp(args []string) ([]string, bool) {
	if len(args) == 1 && args[0] == "help" {
		return nil, true
	}
	for i, arg := range args {
		switch arg {
		case "--":
			return append(args[:i:i], args[i+1:]...), false
		case "-h", "--help":
			return nil, true
		}
	}
	return args, false
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --format FORMAT      Output format: yaml (default) or json")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  bagcalc union bags.yaml              Union of a and b")
	fmt.Fprintln(stdout, "  bagcalc compare --format json -      Compare bags read from stdin")
	fmt.Fprintln(stdout, "  bagcalc cardinality apple bags.yaml  Count apple in a and b")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
