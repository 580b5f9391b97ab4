package cli

import "strings"

// Command is the unit of user intent for one loop iteration.
type Command int

const (
	Continue Command = iota
	Add
	Print
	Check
	Remove
	Exit
)

// menuCommands is the order options are offered in.
var menuCommands = []Command{Add, Check, Remove, Print, Exit}

var commandTokens = map[string]Command{
	"add": Add, "a": Add,
	"check": Check, "c": Check,
	"uncheck": Check, "u": Check,
	"remove": Remove, "r": Remove,
	"print": Print, "p": Print,
	"exit": Exit, "e": Exit,
}

// ParseCommand resolves a token. Surrounding whitespace is ignored; anything
// unrecognized resolves to Continue with ok == false.
func ParseCommand(token string) (cmd Command, ok bool) {
	cmd, ok = commandTokens[strings.TrimSpace(token)]
	if !ok {
		return Continue, false
	}
	return cmd, true
}

func (c Command) String() string {
	switch c {
	case Add:
		return "add"
	case Print:
		return "print"
	case Check:
		return "check"
	case Remove:
		return "remove"
	case Exit:
		return "exit"
	default:
		return "continue"
	}
}

// Label is the menu entry, with the shortcut in parentheses.
func (c Command) Label() string {
	switch c {
	case Add:
		return "(a)dd"
	case Print:
		return "(p)rint"
	case Check:
		return "(c)heck/uncheck"
	case Remove:
		return "(r)emove"
	case Exit:
		return "(e)xit"
	default:
		return ""
	}
}
