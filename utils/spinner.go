package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	// SuccessColor is the ANSI sequence for bright green.
	SuccessColor = "\x1b[92m"
	// ErrorColor is the ANSI sequence for bright red.
	ErrorColor = "\x1b[91m"
	// DefaultColor resets the foreground color.
	DefaultColor = "\x1b[39m"
)

// Spinner initializes the process indicator.
type Spinner struct {
	w        io.Writer
	tty      bool
	stopChan chan struct{}
	done     sync.WaitGroup
}

// NewSpinner instantiates a new Spinner writing to stderr. The spinner only animates
// when stderr is a terminal.
func NewSpinner() *Spinner {
	return &Spinner{
		w:   os.Stderr,
		tty: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// IsTerminal reports whether the spinner output is a terminal.
func (s *Spinner) IsTerminal() bool {
	return s.tty
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	if !s.tty {
		return
	}
	s.stopChan = make(chan struct{})
	s.done.Add(1)

	go func() {
		defer s.done.Done()
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprint(s.w, "\r\x1b[K")
					return
				default:
					fmt.Fprintf(s.w, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and clears its line.
func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	s.done.Wait()
	s.stopChan = nil
}
