package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoloop/internal/model"
	"github.com/idilsaglam/todoloop/internal/ui"
)

// ErrExit is returned by Session.Run when the user picks the exit command.
var ErrExit = errors.New("exit requested")

// Store is the persistence the loop reads and writes every iteration.
type Store interface {
	Load() []model.Item
	Save(items []model.Item) error
}

// Session drives the interactive menu loop over a Store.
type Session struct {
	store  Store
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
	clear  bool
}

// SessionOptions configures a Session. Zero values are usable.
type SessionOptions struct {
	Logger  *log.Logger
	NoClear bool
}

// NewSession wires a loop to its store and console.
func NewSession(store Store, in io.Reader, out io.Writer, opt SessionOptions) *Session {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
		clear:  !opt.NoClear,
	}
}

// Resolve maps a command-line or typed token to a command, reporting
// unknown tokens to the user.
func (s *Session) Resolve(token string) Command {
	cmd, ok := ParseCommand(token)
	if !ok {
		fmt.Fprintf(s.out, "No Command called `%s`\n", strings.TrimSpace(token))
	}
	s.logger.Debug("resolved command", "token", token, "command", cmd)
	return cmd
}

// Run executes cmd, then keeps prompting for commands. Each iteration loads
// the list, applies the command and saves the list back.
//
// Run returns ErrExit for the exit command, nil when the input is exhausted,
// and the wrapped error when saving fails.
func (s *Session) Run(cmd Command) error {
	s.clearScreen()
	for {
		items := s.store.Load()

		items, err := s.dispatch(cmd, items)
		if err != nil {
			return s.stop(err)
		}
		if err := s.store.Save(items); err != nil {
			s.logger.Error("save failed", "err", err)
			return fmt.Errorf("save: %w", err)
		}

		cmd, err = s.nextCommand()
		if err != nil {
			return s.stop(err)
		}
	}
}

func (s *Session) stop(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed")
		return nil
	}
	return err
}

func (s *Session) dispatch(cmd Command, items []model.Item) ([]model.Item, error) {
	s.clearScreen()
	s.logger.Debug("dispatch", "command", cmd, "items", len(items))

	switch cmd {
	case Add:
		fmt.Fprintln(s.out, "What's the Todo's name?")
		name, err := s.readLine()
		if err != nil {
			return items, err
		}
		fmt.Fprint(s.out, "\n\n")
		items = model.Add(items, name)
		s.clearScreen()
		s.printList(items, false)

	case Check:
		if len(items) == 0 {
			return items, nil
		}
		idx, err := s.promptIndex(items)
		if err != nil {
			return items, err
		}
		if err := model.Toggle(items, idx); err != nil {
			return items, err
		}
		s.clearScreen()
		s.printList(items, false)

	case Remove:
		if len(items) == 0 {
			return items, nil
		}
		idx, err := s.promptIndex(items)
		if err != nil {
			return items, err
		}
		if items, err = model.Remove(items, idx); err != nil {
			return items, err
		}
		s.clearScreen()
		s.printList(items, false)

	case Print:
		s.printList(items, false)

	case Exit:
		return items, ErrExit
	}
	return items, nil
}

// promptIndex asks until the user names an existing position.
func (s *Session) promptIndex(items []model.Item) (int, error) {
	fmt.Fprintln(s.out, "Which one?")
	s.printList(items, true)

	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(line, 10, 0)
		if err == nil && n < uint64(len(items)) {
			fmt.Fprint(s.out, "\n\n")
			return int(n), nil
		}
		fmt.Fprintln(s.out)
		ui.Notice(s.out, "Invalid input. Try again")
	}
}

func (s *Session) nextCommand() (Command, error) {
	fmt.Fprintln(s.out, ui.Current().Title.Render("Enter command: "))
	lines := make([]string, 0, len(menuCommands)+1)
	lines = append(lines, "OPTIONS:")
	for _, c := range menuCommands {
		lines = append(lines, " - "+c.Label())
	}
	fmt.Fprintln(s.out, ui.Panel(lines))
	fmt.Fprint(s.out, "\n\n")

	line, err := s.readLine()
	if err != nil {
		return Continue, err
	}
	return s.Resolve(line), nil
}

func (s *Session) printList(items []model.Item, showIndex bool) {
	fmt.Fprint(s.out, FormatList(items, showIndex))
}

// readLine returns the next input line without surrounding whitespace.
// A final line without a newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) clearScreen() {
	if s.clear {
		ui.ClearScreen(s.out)
	}
}

// FormatList renders items one per line followed by a blank line. With
// showIndex every line is prefixed by its zero-based position.
func FormatList(items []model.Item, showIndex bool) string {
	var b strings.Builder
	if len(items) == 0 {
		b.WriteString("[Empty Todo List]\n")
	}
	for i, it := range items {
		if showIndex {
			fmt.Fprintf(&b, "%d ", i)
		}
		b.WriteString(it.String())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
