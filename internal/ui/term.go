package ui

import (
	"fmt"
	"io"
)

// clearSeq erases the screen and homes the cursor.
const clearSeq = "\x1b[2J\x1b[1;1H"

const (
	symCheck = "✔"
	symCross = "✖"
)

// ClearScreen writes the erase/home sequence to w.
func ClearScreen(w io.Writer) { fmt.Fprint(w, clearSeq) }

// OK prints a success status line.
func OK(w io.Writer, msg string) { fmt.Fprintln(w, current.Success.Render(symCheck+" "+msg)) }

// Fail prints an error status line.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, current.Error.Render(symCross+" "+msg)) }

// Notice prints an informational line.
func Notice(w io.Writer, msg string) { fmt.Fprintln(w, current.Pending.Render(msg)) }
