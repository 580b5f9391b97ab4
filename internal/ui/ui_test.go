package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	ClearScreen(&buf)
	assert.Equal(t, "\x1b[2J\x1b[1;1H", buf.String())
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "broken")
	Notice(&buf, "heads up")
	out := buf.String()
	assert.Contains(t, out, "✔ saved")
	assert.Contains(t, out, "✖ broken")
	assert.Contains(t, out, "heads up")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")

	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("mono")
	assert.Equal(t, "mono", Current().Name)
	SetTheme("whatever")
	assert.Equal(t, "classic", Current().Name)
}

func TestPanelContainsLines(t *testing.T) {
	defer SetTheme("classic")
	SetTheme("mono")
	out := Panel([]string{"one", "two"})
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.True(t, strings.HasPrefix(out, "+"))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░ 1/2", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░ 0/1", ProgressBar(0, 0, 0))
	assert.Equal(t, "█████ 3/3", ProgressBar(3, 3, 5))
}
