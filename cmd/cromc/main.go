/*
File    : cromfront/cmd/cromc/main.go
Package : main

cromc is the command-line driver for the Crom front-end: given a source
file it lexes and parses it, printing either the resulting AST or the
collected diagnostics. With no file argument it starts the interactive
REPL instead, per SPEC_FULL.md §2.4. A bare net.Listen REPL-over-TCP
subcommand has no home here: spec.md names no networked surface for a
front-end, and accepting raw TCP input for a parser with no sandboxing
would be a new unauthenticated attack surface this front-end was never
asked to expose.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/rtmath/cromfront/config"
	"github.com/rtmath/cromfront/repl"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

const (
	version = "v0.1.0"
	author  = "rtmath"
	license = "MIT"
	prompt  = "crom >>> "
	line    = "----------------------------------------------------------------"
)

var banner = `
   ▄████▄   ██▀███   ▒█████    ███▄ ▄███▓
  ▒██▀ ▀█  ▓██ ▒ ██▒▒██▒  ██▒ ▓██▒▀█▀ ██▒
  ▒▓█    ▄ ▓██ ░▄█ ▒▒██░  ██▒ ▓██    ▓██░
  ▒▓▓▄ ▄██▒▒██▀▀█▄  ▒██   ██░ ▒██    ▒██
  ▒ ▓███▀ ░░██▓ ▒██▒░ ████▓▒░ ▒██▒   ░██▒
  ░ ░▒ ▒  ░░ ▒▓ ░▒▓░░ ▒░▒░▒░  ░ ▒░   ░  ░
`

func main() {
	limits := config.Default()

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		}
	}

	configPath, rest := extractConfigFlag(args)
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
			os.Exit(1)
		}
		limits = loaded
	}

	if len(rest) == 0 {
		r := repl.NewRepl(banner, version, author, line, license, prompt)
		r.Limits = limits
		r.Start(os.Stdin, os.Stdout)
		return
	}

	runFile(rest[0], limits)
}

// extractConfigFlag pulls the first "--config <path>" pair out of args,
// returning the path (empty if absent) and the remaining arguments.
func extractConfigFlag(args []string) (string, []string) {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			rest := append(append([]string{}, args[:i]...), args[i+2:]...)
			return args[i+1], rest
		}
	}
	return "", args
}

// runFile parses the named source file under limits and prints its AST,
// or its diagnostics and a non-zero exit code on failure.
func runFile(fileName string, limits config.Limits) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", fileName, err)
		os.Exit(1)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[INTERNAL ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := limits.NewParser(string(source), fileName)
	root, _ := p.Parse()

	if p.Sink.HasErrors() {
		for _, d := range p.Sink.Diagnostics() {
			redColor.Fprintf(os.Stderr, "%s\n", d)
		}
		os.Exit(1)
	}

	yellowColor.Println(root.String())
}

func showHelp() {
	cyanColor.Println("cromc — the Crom language front-end")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  cromc                         Start the interactive REPL")
	fmt.Println("  cromc <path>                  Parse a file and print its AST")
	fmt.Println("  cromc --config <limits.yaml>  Load compiler limits before parsing")
	fmt.Println("  cromc --help                  Display this help message")
	fmt.Println("  cromc --version               Display version information")
}

func showVersion() {
	cyanColor.Printf("cromc %s (%s, %s)\n", version, license, author)
}
