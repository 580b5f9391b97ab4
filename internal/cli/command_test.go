package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		token string
		want  Command
		ok    bool
	}{
		{"add", Add, true},
		{"a", Add, true},
		{"check", Check, true},
		{"c", Check, true},
		{"uncheck", Check, true},
		{"u", Check, true},
		{"remove", Remove, true},
		{"r", Remove, true},
		{"print", Print, true},
		{"p", Print, true},
		{"exit", Exit, true},
		{"e", Exit, true},
		{"  p \n", Print, true},
		{"zz", Continue, false},
		{"", Continue, false},
		{"ADD", Continue, false},
		{"adds", Continue, false},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			got, ok := ParseCommand(tc.token)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestCommandLabels(t *testing.T) {
	var labels []string
	for _, c := range menuCommands {
		labels = append(labels, c.Label())
	}
	assert.Equal(t, []string{"(a)dd", "(c)heck/uncheck", "(r)emove", "(p)rint", "(e)xit"}, labels)
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "check", Check.String())
}
