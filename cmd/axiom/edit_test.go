package main

import (
	"testing"

	"github.com/0xalexb/axiom/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commented = `server:
  # listen port
  port: 8080 # default
  host: localhost
`

func TestEditCommand_Set(t *testing.T) {
	t.Parallel()

	path := writeFile(t, commented)
	app, printer := newTestApp()

	_, err := app.Parse([]string{"set", path, "server.port", "9090"})
	require.NoError(t, err)
	assert.Empty(t, printer.Lines)

	assert.Equal(t, "server:\n  # listen port\n  port: 9090 # default\n  host: localhost\n", readFile(t, path))
}

func TestEditCommand_Set_CreatesMappings(t *testing.T) {
	t.Parallel()

	path := writeFile(t, commented)
	app, _ := newTestApp()

	_, err := app.Parse([]string{"set", path, "server.tls.enabled", "true"})
	require.NoError(t, err)

	doc, err := document.LoadFile(path)
	require.NoError(t, err)

	enabled, err := doc.Bool("server.tls.enabled")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestEditCommand_Set_List(t *testing.T) {
	t.Parallel()

	path := writeFile(t, commented)
	app, _ := newTestApp()

	_, err := app.Parse([]string{"set", "--list", path, "server.hosts", "a", "b"})
	require.NoError(t, err)

	doc, err := document.LoadFile(path)
	require.NoError(t, err)

	hosts, ok := doc.StringList("server.hosts")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, hosts)
}

func TestEditCommand_Set_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{name: "several values without list", args: []string{"server.port", "1", "2"}, err: errSingleValue},
		{name: "scalar intermediate", args: []string{"server.port.value", "1"}, err: document.ErrStructuralConflict},
		{name: "empty segment", args: []string{"server..port", "1"}, err: document.ErrInvalidPath},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, commented)
			app, _ := newTestApp()

			_, err := app.Parse(append([]string{"set", path}, tt.args...))
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, commented, readFile(t, path))
		})
	}
}

func TestEditCommand_Set_DryRun(t *testing.T) {
	t.Parallel()

	path := writeFile(t, commented)
	app, printer := newTestApp()

	_, err := app.Parse([]string{"set", "--dry-run", path, "server.port", "9090"})
	require.NoError(t, err)

	assert.Equal(t, commented, readFile(t, path))
	assert.Contains(t, printer.Lines, "-  port: 8080 # default")
	assert.Contains(t, printer.Lines, "+  port: 9090 # default")
	assert.Contains(t, printer.Lines, "   host: localhost")
}

func TestEditCommand_Delete(t *testing.T) {
	t.Parallel()

	path := writeFile(t, commented)
	app, _ := newTestApp()

	_, err := app.Parse([]string{"delete", path, "server.host"})
	require.NoError(t, err)
	assert.Equal(t, "server:\n  # listen port\n  port: 8080 # default\n", readFile(t, path))

	app, _ = newTestApp()

	_, err = app.Parse([]string{"delete", path, "server.missing"})
	require.NoError(t, err)
	assert.Equal(t, "server:\n  # listen port\n  port: 8080 # default\n", readFile(t, path))
}
