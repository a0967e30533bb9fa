// Package session runs the line-oriented query loop shared by the local CLI
// and the SSH server.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tomz197/closestapproach/internal/input"
	"github.com/tomz197/closestapproach/internal/physics"
)

// Options configure a session.
type Options struct {
	Calculator physics.Calculator
	Prompt     string  // written before each line is read; empty for none
	Radius     float64 // when > 0, replies also report whether the points collide
}

// LineReader yields one line of input at a time without its terminator.
// It returns io.EOF when input is exhausted. *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
}

// Scanner adapts an io.Reader to LineReader.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner returns a LineReader over r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

// ReadLine returns the next line.
func (s *Scanner) ReadLine() (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.s.Text(), nil
}

// Run answers one query per line read from lines until EOF or a quit
// command. Malformed lines get an error reply and do not end the session.
func Run(lines LineReader, w io.Writer, opts Options) error {
	for {
		if opts.Prompt != "" {
			if _, err := io.WriteString(w, opts.Prompt); err != nil {
				return err
			}
		}

		line, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case input.IsQuit(line):
			return nil
		}

		if _, err := io.WriteString(w, Answer(line, opts)+"\n"); err != nil {
			return err
		}
	}
}

// Answer evaluates a single query line and formats the reply.
func Answer(line string, opts Options) string {
	q, err := input.ParseQuery(line)
	if err != nil {
		return "error: " + err.Error()
	}
	return Format(q, opts)
}

// Format evaluates q and renders the result.
func Format(q input.Query, opts Options) string {
	a := opts.Calculator.ClosestApproach(q.P, q.U, q.Q, q.V)
	out := fmt.Sprintf("distance=%g t=%g", a.Distance(), a.T)
	if opts.Radius > 0 {
		out += fmt.Sprintf(" collide=%t", a.Within(opts.Radius))
	}
	return out
}
