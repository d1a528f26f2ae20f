package main

import (
	"testing"

	"github.com/0xalexb/axiom/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settings = `server:
  host: localhost # bind address
  port: 8080
  hosts:
    - a.example.com
    - b.example.com
debug: false
`

func TestReadCommand_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{name: "scalar", path: "server.port", expected: []string{"8080"}},
		{name: "commented scalar", path: "server.host", expected: []string{"localhost"}},
		{name: "list", path: "server.hosts", expected: []string{"a.example.com", "b.example.com"}},
		{name: "top level", path: "debug", expected: []string{"false"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, printer := newTestApp()

			_, err := app.Parse([]string{"get", writeFile(t, settings), tt.path})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, printer.Lines)
		})
	}
}

func TestReadCommand_Get_Mapping(t *testing.T) {
	t.Parallel()

	app, printer := newTestApp()

	_, err := app.Parse([]string{"get", writeFile(t, settings), "server"})
	require.NoError(t, err)

	require.NotEmpty(t, printer.Lines)
	assert.Equal(t, "host: localhost # bind address", printer.Lines[0])
	assert.Contains(t, printer.Lines, "port: 8080")
}

func TestReadCommand_Get_NotFound(t *testing.T) {
	t.Parallel()

	app, printer := newTestApp()

	_, err := app.Parse([]string{"get", writeFile(t, settings), "server.missing"})
	require.ErrorIs(t, err, document.ErrNotFound)
	assert.Empty(t, printer.Lines)
}

func TestReadCommand_Keys(t *testing.T) {
	t.Parallel()

	path := writeFile(t, settings)

	app, printer := newTestApp()

	_, err := app.Parse([]string{"keys", path})
	require.NoError(t, err)
	assert.Equal(t, []string{"server", "debug"}, printer.Lines)

	app, printer = newTestApp()

	_, err = app.Parse([]string{"keys", path, "server"})
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "port", "hosts"}, printer.Lines)

	app, _ = newTestApp()

	_, err = app.Parse([]string{"keys", path, "server.port"})
	require.ErrorIs(t, err, document.ErrNotFound)
}

func TestReadCommand_Paths(t *testing.T) {
	t.Parallel()

	app, printer := newTestApp()

	_, err := app.Parse([]string{"paths", writeFile(t, settings)})
	require.NoError(t, err)
	assert.Equal(t, []string{"server", "server.host", "server.port", "server.hosts", "debug"}, printer.Lines)
}

func TestReadCommand_MissingFile(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp()

	_, err := app.Parse([]string{"paths", "/nonexistent/config.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}
