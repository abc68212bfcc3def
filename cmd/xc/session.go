package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/xc"
)

// session evaluates statements in one context and shows the results.
type session struct {
	ctx     *xc.Context
	out     io.Writer
	errs    io.Writer
	formats []format
}

// run evaluates a parsed statement and shows its value, if it has one.
func (s *session) run(e *xc.Expr) {
	v, err := s.ctx.Eval(e)
	if err != nil {
		fmt.Fprintln(s.errs, "error:", err)
		return
	}
	if v != nil {
		if err := show(s.out, v, s.formats); err != nil {
			fmt.Fprintln(s.errs, "error:", err)
		}
	}
}

// args evaluates each semicolon-separated statement in arg, echoing each
// before its result.
func (s *session) args(arg string) {
	for _, stmt := range strings.Split(arg, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		fmt.Fprintln(s.out, ">", stmt)
		e, err := xc.ParseString(stmt)
		if err != nil {
			fmt.Fprintln(s.errs, "error:", err)
			continue
		}
		s.run(e)
	}
}

// stream evaluates statements from src ending at semicolons or newlines. A
// statement with a syntax error is reported and skipped. The result is
// non-nil only if reading src fails.
func (s *session) stream(src io.RuneScanner) error {
	r := &stmtReader{src: src}
	for {
		e, err := xc.Parse(r, xc.StopOn(';', '\n'))
		if err == nil {
			s.run(e)
			continue
		}
		var ierr xc.InputError
		if !errors.As(err, &ierr) {
			return err
		}
		// Blank statements are fine, but () is not.
		var empty *xc.EmptyExpressionError
		if !errors.As(err, &empty) || !r.ended {
			fmt.Fprintln(s.errs, "error:", err)
			if err := r.skip(); err != nil {
				return err
			}
		}
		if r.eof {
			return nil
		}
	}
}

// stmtReader tracks statement boundaries in a rune stream so that the rest of
// a statement can be skipped after a syntax error.
type stmtReader struct {
	src io.RuneScanner
	// ended is whether the last rune read ended a statement.
	ended bool
	// eof is whether the stream has ended.
	eof bool
}

func (r *stmtReader) ReadRune() (rune, int, error) {
	c, sz, err := r.src.ReadRune()
	if err != nil {
		r.ended = true
		r.eof = errors.Is(err, io.EOF)
		return c, sz, err
	}
	r.ended = c == ';' || c == '\n'
	return c, sz, nil
}

func (r *stmtReader) UnreadRune() error {
	r.ended, r.eof = false, false
	return r.src.UnreadRune()
}

// skip discards input through the end of the current statement.
func (r *stmtReader) skip() error {
	for !r.ended {
		if _, _, err := r.ReadRune(); err != nil && !r.eof {
			return err
		}
	}
	return nil
}

// repl runs an interactive session with line editing, keeping history in the
// named file.
func (s *session) repl(history string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(history); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(history); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(">> ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if err := s.stream(strings.NewReader(line)); err != nil {
			return err
		}
		fmt.Fprintln(s.out)
	}
}
