package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoloop/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), DefaultFileName), nil)
}

func TestRoundTrip(t *testing.T) {
	many := make([]model.Item, 0, 50)
	for i := 0; i < 50; i++ {
		many = append(many, model.Item{Name: string(rune('a' + i%26)), Completed: i%3 == 0})
	}

	testCases := []struct {
		name  string
		items []model.Item
	}{
		{"empty", []model.Item{}},
		{"one", []model.Item{{Name: "Buy milk", Completed: true}}},
		{"many", many},
		{"odd names", []model.Item{{Name: ""}, {Name: `say "hi"`}, {Name: "ünïcode ✔"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			require.NoError(t, s.Save(tc.items))
			assert.Equal(t, tc.items, s.Load())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	items := s.Load()
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	testCases := map[string]string{
		"not json":        "{{{",
		"empty":           "",
		"null":            "null",
		"object":          `{"name":"A","completed":false}`,
		"missing field":   `[{"name":"A"}]`,
		"wrong type":      `[{"name":"A","completed":"yes"}]`,
		"number name":     `[{"name":5,"completed":false}]`,
		"truncated array": `[{"name":"A","completed":false}`,
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			s := newTestStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))
			assert.Equal(t, []model.Item{}, s.Load())
		})
	}
}

func TestLoadToleratesExtraFields(t *testing.T) {
	s := newTestStore(t)
	content := `[{"name":"A","completed":true,"due":"tomorrow"}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))
	assert.Equal(t, []model.Item{{Name: "A", Completed: true}}, s.Load())
}

func TestSaveFormat(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(nil))
	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	require.NoError(t, s.Save([]model.Item{{Name: "A"}, {Name: "B", Completed: true}}))
	b, err = os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"A","completed":false},{"name":"B","completed":true}]`, string(b))
}

func TestSaveOverwritesAndLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]model.Item{{Name: "A"}, {Name: "B"}}))
	require.NoError(t, s.Save([]model.Item{{Name: "C"}}))
	assert.Equal(t, []model.Item{{Name: "C"}}, s.Load())

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultFileName, entries[0].Name())
}

func TestSaveUnwritableDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing", DefaultFileName), nil)
	err := s.Save([]model.Item{{Name: "A"}})
	assert.Error(t, err)
}

func TestNewDefaultsPath(t *testing.T) {
	assert.Equal(t, DefaultFileName, New("", nil).Path())
}
