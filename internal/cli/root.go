package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoloop/internal/config"
	"github.com/idilsaglam/todoloop/internal/store/jsonstore"
	"github.com/idilsaglam/todoloop/internal/ui"
)

// Exit codes (0 ok, 1 runtime, 2 usage).
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the process status for an error returned by a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUsage
}

// IO is the console a command talks to.
type IO struct {
	In       io.Reader
	Out, Err io.Writer
}

// StdIO is the process console.
func StdIO() IO { return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr} }

type rootFlags struct {
	configFile string
	file       string
	theme      string
	logLevel   string
	noClear    bool
}

// NewRootCmd builds the todo command tree.
func NewRootCmd(stdio IO) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "todo [command]",
		Short: "todo - an interactive todo list",
		Long: `todo keeps a list of items in a JSON file and edits it through a menu.

The optional argument is the first command to run:
  add, a              Add an item
  check, c, uncheck, u  Toggle an item
  remove, r           Remove an item
  print, p            Print the list
  exit, e             Quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, f, stdio)
			if err != nil {
				return err
			}
			return runMenu(env, args, stdio)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "config file (default .todo.toml in the working directory)")
	pf.StringVarP(&f.file, "file", "f", config.DefaultFile, "todo list file")
	pf.StringVar(&f.theme, "theme", config.DefaultTheme, "color theme: classic, neon or mono")
	pf.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.BoolVar(&f.noClear, "no-clear", false, "don't clear the screen between commands")

	cmd.AddCommand(newBrowseCmd(&f, stdio))
	return cmd
}

// Execute runs the root command with the provided args.
func Execute(args []string, stdio IO) error {
	cmd := NewRootCmd(stdio)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrExit) {
		ui.Fail(stdio.Err, err.Error())
	}
	return err
}

// appEnv is what every subcommand needs after configuration.
type appEnv struct {
	cfg    *config.Config
	logger *log.Logger
	store  *jsonstore.Store
}

func setup(cmd *cobra.Command, f rootFlags, stdio IO) (*appEnv, error) {
	o := config.Overrides{ConfigFile: f.configFile}
	flags := cmd.Flags()
	if flags.Changed("file") {
		o.File = &f.file
	}
	if flags.Changed("theme") {
		o.Theme = &f.theme
	}
	if flags.Changed("log-level") {
		o.LogLevel = &f.logLevel
	}
	if flags.Changed("no-clear") {
		o.NoClear = &f.noClear
	}

	cfg, err := config.Load(o)
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Err: fmt.Errorf("config: %w", err)}
	}

	ui.SetTheme(cfg.Theme)
	logger := log.NewWithOptions(stdio.Err, log.Options{
		Level:  cfg.Level(),
		Prefix: "todo",
	})
	logger.Debug("config loaded", "file", cfg.File, "theme", cfg.Theme)

	return &appEnv{
		cfg:    cfg,
		logger: logger,
		store:  jsonstore.New(cfg.File, logger),
	}, nil
}

func runMenu(e *appEnv, args []string, stdio IO) error {
	s := NewSession(e.store, stdio.In, stdio.Out, SessionOptions{
		Logger:  e.logger,
		NoClear: e.cfg.NoClear,
	})

	start := Continue
	if len(args) == 1 {
		start = s.Resolve(args[0])
	}

	if err := s.Run(start); err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return nil
}
