// Package console writes styled text to the process's terminal.
//
// A Context is created once, in main, and handed to whatever needs to print. The
// terminal is probed on first use only.
package console

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/containerd/console"
)

type Context struct {
	out io.Writer

	once sync.Once
	term console.Console
	ansi bool
}

// New returns a context writing to out, usually os.Stdout or os.Stderr.
func New(out io.Writer) *Context {
	return &Context{out: out}
}

func (c *Context) probe() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return
	}
	f, ok := c.out.(console.File)
	if !ok {
		return
	}
	// on Windows this also switches on virtual terminal processing
	term, err := console.ConsoleFromFile(f)
	if err != nil {
		return
	}
	c.term = term
	c.ansi = true
}

// ANSI reports whether escape sequences reach a terminal.
func (c *Context) ANSI() bool {
	c.once.Do(c.probe)
	return c.ansi
}

func (c *Context) Writer() io.Writer { return c.out }

// Sprint styles the message when the output is a terminal and leaves it plain otherwise.
func (c *Context) Sprint(style Style, a ...any) string {
	if !c.ANSI() {
		return Style{}.Sprint(a...)
	}
	return style.Sprint(a...)
}

// Logger returns a stdlib logger whose prefix is drawn in color.
func (c *Context) Logger(prefix string, color Color) *log.Logger {
	styled := c.Sprint(Style{Formatting: []Formatting{Bold}, Fg: &color}, prefix)
	return log.New(c.out, styled+" ", log.LstdFlags|log.Lmsgprefix)
}

// Close restores the terminal's original mode.
func (c *Context) Close() error {
	if c.term == nil {
		return nil
	}
	return c.term.Reset()
}
