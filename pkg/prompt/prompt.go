// Package prompt provides the interactive conflict resolver. Every
// destructive overwrite of a pre-existing live-system file during
// install routes through Confirm with default false; gather never
// prompts.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/herfiles/herfiles/pkg/logging"
)

// Resolver asks the operator yes/no and multiple-choice questions on the
// console. When stdin is not a terminal it answers every question with
// its default instead of blocking.
type Resolver struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New creates a Resolver bound to stdin/stdout.
func New() *Resolver {
	return &Resolver{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

// NewWithIO creates a Resolver reading from r and writing to w, treated
// as interactive. Used by tests.
func NewWithIO(r io.Reader, w io.Writer) *Resolver {
	return &Resolver{
		in:          bufio.NewReader(r),
		out:         w,
		interactive: true,
	}
}

// Confirm asks a yes/no question. Empty input returns def; "y"/"yes"
// (case-insensitive) returns true; anything else returns false.
func (r *Resolver) Confirm(question string, def bool) bool {
	if !r.interactive {
		logger := logging.GetLogger("prompt")
		logger.Debug().
			Str("question", question).
			Bool("default", def).
			Msg("non-interactive session, taking default")
		return def
	}

	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	fmt.Fprintf(r.out, "%s %s: ", question, marker)

	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return def
	}
	return answer == "y" || answer == "yes"
}

// Choose presents a numbered menu and returns the chosen index.
// Non-numeric or out-of-range input falls back to defIdx.
func (r *Resolver) Choose(question string, options []string, defIdx int) int {
	if !r.interactive || len(options) == 0 {
		return defIdx
	}

	fmt.Fprintln(r.out, question)
	for i, opt := range options {
		marker := " "
		if i == defIdx {
			marker = "*"
		}
		fmt.Fprintf(r.out, " %s %d) %s\n", marker, i+1, opt)
	}
	fmt.Fprintf(r.out, "Choice [%d]: ", defIdx+1)

	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return defIdx
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return defIdx
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return defIdx
	}
	return n - 1
}
