/*
File    : cromfront/repl/repl.go
Package : repl

An interactive front-end REPL: each line is lexed and parsed exactly as
a file would be, and the resulting AST (or its diagnostics) is printed
instead of evaluated — this is a front-end, not an interpreter, so there
is no eval step. A chzyer/readline + fatih/color shape: "parse and print
the AST" instead of "evaluate and print the result".
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rtmath/cromfront/config"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	Limits config.Limits
}

// NewRepl returns a Repl configured with Default() limits; callers that
// loaded a --config file can overwrite r.Limits before calling Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner: banner, Version: version, Author: author,
		Line: line, License: license, Prompt: prompt,
		Limits: config.Default(),
	}
}

// PrintBannerInfo writes the startup banner, version line, and usage
// hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to cromc — the Crom front-end!")
	cyanColor.Fprintf(writer, "%s\n", "Type a snippet and press enter to see its parsed AST")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-parse-print loop against reader/writer until the
// user exits or EOF is reached. Each line is parsed independently — this
// front-end has no persistent symbol table across lines, since spec.md's
// scope lifecycle is scoped to a single compilation unit.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.parseAndPrint(writer, line)
	}
}

// parseAndPrint runs one line through the parser and prints either its
// AST or its collected diagnostics, recovering from any internal
// (Fatal) error the same way cmd/cromc's runFile does in file mode —
// the REPL keeps running afterward, unlike the file driver.
func (r *Repl) parseAndPrint(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	p := r.Limits.NewParser(line, "<repl>")
	root, _ := p.Parse()

	if p.Sink.HasErrors() {
		for _, d := range p.Sink.Diagnostics() {
			redColor.Fprintf(writer, "%s\n", d)
		}
		return
	}

	yellowColor.Fprintf(writer, "%s\n", root)
}
