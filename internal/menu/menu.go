package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/genricoloni/resswitch/internal/editor"
	"github.com/genricoloni/resswitch/internal/engine"
	"go.uber.org/zap"
)

// Runner is a blocking menu action
type Runner interface {
	Run(ctx context.Context) error
}

// LineReader reads one line of user input per call.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Menu is the interactive "1/2" console prompt
type Menu struct {
	logger    *zap.Logger
	editor    Runner
	engine    Runner
	newReader func() (LineReader, error)
	out       io.Writer

	mu     sync.Mutex
	reader LineReader
	closed bool
}

// New creates the console menu over a readline terminal
func New(logger *zap.Logger, ed *editor.Editor, eng *engine.Engine) *Menu {
	return NewWithReader(logger, ed, eng, newReadline, os.Stdout)
}

// NewWithReader creates a menu with custom input and output
func NewWithReader(logger *zap.Logger, ed, eng Runner, newReader func() (LineReader, error), out io.Writer) *Menu {
	return &Menu{
		logger:    logger,
		editor:    ed,
		engine:    eng,
		newReader: newReader,
		out:       out,
	}
}

func newReadline() (LineReader, error) {
	cyan := color.New(color.FgCyan).SprintFunc()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cyan("> "),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

// Run shows the menu until the user starts monitoring or closes the input.
// Choosing monitoring blocks until ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	rl, err := m.open()
	if err != nil {
		return err
	}
	defer m.Close()

	m.printMenu()

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				// Ctrl+C at the prompt, ask again
				continue
			}
			if errors.Is(err, io.EOF) || m.isClosed() {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(line) {
		case "1":
			if err := m.editor.Run(ctx); err != nil {
				m.printError(err.Error())
			}
			m.printMenu()
		case "2":
			// The loop owns the terminal from here on
			m.Close()
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(m.out, "%s Press Ctrl+C to stop.\n", green("Monitoring started."))
			return m.engine.Run(ctx)
		default:
			m.printError(fmt.Sprintf("invalid choice %q, enter 1 or 2", strings.TrimSpace(line)))
		}
	}
}

// Close releases the terminal, unblocking a pending read
func (m *Menu) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	if m.reader == nil {
		return nil
	}
	return m.reader.Close()
}

func (m *Menu) open() (LineReader, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, errors.New("menu is closed")
	}
	rl, err := m.newReader()
	if err != nil {
		return nil, err
	}
	m.reader = rl
	return rl, nil
}

func (m *Menu) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Menu) printMenu() {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(m.out, bold("1.")+" Add program")
	fmt.Fprintln(m.out, bold("2.")+" Start monitoring")
}

func (m *Menu) printError(msg string) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(m.out, "%s %s\n", red("Error:"), msg)
}
