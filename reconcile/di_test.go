package reconcile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/axiom/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type serverConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (c *serverConfig) Validate() error {
	if c.Port == 0 {
		return errors.New("port is required")
	}

	return nil
}

func TestNewModule_WithOptions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.yaml")

	var doc *document.Document

	app := fxtest.New(t,
		NewModule("app", WithPath(path), WithDefaults([]byte(defaultsText))),
		fx.Invoke(fx.Annotate(func(d *document.Document) {
			doc = d
		}, fx.ParamTags(`name:"app"`))),
	)

	app.RequireStart()

	require.NotNil(t, doc)

	host, ok := doc.String("server.host")
	require.True(t, ok)
	assert.Equal(t, "localhost", host)
	assert.Equal(t, defaultsText, readFile(t, path))

	app.RequireStop()
}

func TestNewModule_WithExternalConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.yaml")
	cfg := Config{Path: path, Defaults: "a: 1\n"}

	app := fxtest.New(t,
		fx.Supply(fx.Annotate(cfg, fx.ResultTags(`name:"external"`))),
		NewModule("external"),
	)

	app.RequireStart()
	app.RequireStop()

	assert.Equal(t, "a: 1\n", readFile(t, path))
}

func TestNewModule_TwoDocuments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var first, second *document.Document

	app := fxtest.New(t,
		NewModule("first", WithPath(filepath.Join(dir, "first.yaml")), WithDefaults([]byte("name: first\n"))),
		NewModule("second", WithPath(filepath.Join(dir, "second.yaml")), WithDefaults([]byte("name: second\n"))),
		fx.Invoke(fx.Annotate(func(a, b *document.Document) {
			first, second = a, b
		}, fx.ParamTags(`name:"first"`, `name:"second"`))),
	)

	app.RequireStart()
	defer app.RequireStop()

	name, _ := first.String("name")
	assert.Equal(t, "first", name)

	name, _ = second.String("name")
	assert.Equal(t, "second", name)
}

func TestNewModule_SaveOnStop(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.yaml")

	var doc *document.Document

	app := fxtest.New(t,
		NewModule("app", WithPath(path), WithDefaults([]byte("count: 1\n")), WithSaveOnStop()),
		fx.Invoke(fx.Annotate(func(d *document.Document) {
			doc = d
		}, fx.ParamTags(`name:"app"`))),
	)

	app.RequireStart()
	require.NoError(t, doc.Set("count", 2))
	app.RequireStop()

	assert.Equal(t, "count: 2\n", readFile(t, path))
}

func TestNewModule_ReconcileFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n"), 0o600))

	app := fx.New(
		NewModule("broken", WithPath(path)),
		fx.NopLogger,
	)

	err := app.Err()
	require.ErrorIs(t, err, document.ErrInvalidDocument)
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(
		NewModule("", WithPath("app.yaml")),
		fx.NopLogger,
	)

	err := app.Err()
	require.Error(t, err, "should fail with empty name")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewModule_EmptyPath(t *testing.T) {
	t.Parallel()

	app := fx.New(
		NewModule("app", WithDefaults([]byte("a: 1\n"))),
		fx.NopLogger,
	)

	require.ErrorIs(t, app.Err(), ErrEmptyPath)
}

func TestProvideSection(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600))

	var cfg *serverConfig

	app := fxtest.New(t,
		NewModule("app", WithPath(path), WithDefaults([]byte(defaultsText))),
		ProvideSection[serverConfig]("app", "server"),
		fx.Populate(&cfg),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, cfg)
	assert.Equal(t, serverConfig{Host: "localhost", Port: 9090}, *cfg)
}

func TestProvideSection_ValidationFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.yaml")

	var cfg *serverConfig

	app := fx.New(
		NewModule("app", WithPath(path), WithDefaults([]byte("server:\n  host: h\n"))),
		ProvideSection[serverConfig]("app", "server"),
		fx.Populate(&cfg),
		fx.NopLogger,
	)

	err := app.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port is required")
}
