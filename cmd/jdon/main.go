package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/radim10/jdon/jdon"
)

// CLI defines the command-line interface
var CLI struct {
	Input   string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Decode  bool   `help:"Convert JDON input to JSON. The default direction converts JSON to JDON." short:"d"`
	Compact bool   `help:"Emit JSON without indentation (with --decode)." short:"c"`
	Indent  int    `help:"JSON indent width (with --decode)." default:"2"`
	Version bool   `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jdon"),
		kong.Description("Convert between JSON and JDON, a compact pipe-delimited interchange format"),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jdon version %s\n", version)
		return
	}

	input, err := readInput()
	if err != nil {
		fatal(err)
	}

	var out string
	if CLI.Decode {
		out, err = jdon.ToJSONTextWithOptions(input, jdon.JSONOptions{
			Pretty: !CLI.Compact,
			Indent: CLI.Indent,
		})
	} else {
		out, err = jdon.FromJSONText(input)
	}
	if err != nil {
		fatal(err)
	}

	if err := writeOutput(out + "\n"); err != nil {
		fatal(err)
	}
}

func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", CLI.Input, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func writeOutput(s string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(s), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", CLI.Output, err)
		}
		return nil
	}

	_, err := os.Stdout.WriteString(s)
	return err
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "jdon: %v\n", err)
	os.Exit(1)
}
