package document_test

import (
	"math"
	"testing"

	"github.com/0xalexb/axiom/document"
	"github.com/0xalexb/axiom/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# Service settings
server:
  host: localhost # bind address
  port: 8080
  tls: false
  timeout: 2.5
  hex: 0x1F
  tags:
    - api
    - nested:
        skipped: true
    - "42"
name: demo
`

func TestSection_Node(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)

	n, ok := doc.Node("server.port")
	require.True(t, ok)
	assert.Equal(t, "8080", n.Value)

	root, ok := doc.Node("")
	require.True(t, ok)
	assert.True(t, node.IsMapping(root))

	for _, path := range []string{"missing", "server.missing", "name.child", "server.tags.0", "server..port"} {
		_, ok := doc.Node(path)
		assert.False(t, ok, path)
		assert.False(t, doc.Has(path), path)
	}

	assert.True(t, doc.Has("server.tags"))
}

func TestSection_String(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)

	host, ok := doc.String("server.host")
	require.True(t, ok)
	assert.Equal(t, "localhost", host)

	port, ok := doc.String("server.port")
	require.True(t, ok)
	assert.Equal(t, "8080", port)

	_, ok = doc.String("server")
	assert.False(t, ok)

	_, ok = doc.String("server.tags")
	assert.False(t, ok)

	_, ok = doc.String("nope")
	assert.False(t, ok)
}

func TestSection_Int(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)

	port, err := doc.Int("server.port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	_, err = doc.Int("server.hex")
	require.ErrorIs(t, err, document.ErrInvalidFormat)

	signed := mustParse(t, "a: -12\nb: +7\nc: 0o17\nd: 1_000\n")

	a, err := signed.Int("a")
	require.NoError(t, err)
	assert.Equal(t, -12, a)

	b, err := signed.Int("b")
	require.NoError(t, err)
	assert.Equal(t, 7, b)

	for _, path := range []string{"c", "d"} {
		_, err = signed.Int(path)
		require.ErrorIs(t, err, document.ErrInvalidFormat, path)
	}

	_, err = doc.Int("server.host")
	require.ErrorIs(t, err, document.ErrInvalidFormat)

	_, err = doc.Int("server.timeout")
	require.ErrorIs(t, err, document.ErrInvalidFormat)

	_, err = doc.Int("server.missing")
	require.ErrorIs(t, err, document.ErrNotFound)

	_, err = doc.Int("server")
	require.ErrorIs(t, err, document.ErrNotFound)
}

func TestSection_Bool(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "a: true\nb: false\nc: yes\nd: 1\nf: False\ng: TRUE\n")

	a, err := doc.Bool("a")
	require.NoError(t, err)
	assert.True(t, a)

	b, err := doc.Bool("b")
	require.NoError(t, err)
	assert.False(t, b)

	for _, path := range []string{"c", "d", "f", "g"} {
		_, err = doc.Bool(path)
		require.ErrorIs(t, err, document.ErrInvalidFormat, path)
	}

	_, err = doc.Bool("e")
	require.ErrorIs(t, err, document.ErrNotFound)
}

func TestSection_Float(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "a: 2.5\nb: 3\nc: .inf\nd: -.Inf\ne: .nan\nf: text\n")

	a, err := doc.Float("a")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, a, 1e-9)

	b, err := doc.Float("b")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, b, 1e-9)

	c, err := doc.Float("c")
	require.NoError(t, err)
	assert.True(t, math.IsInf(c, 1))

	d, err := doc.Float("d")
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, -1))

	e, err := doc.Float("e")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(e))

	_, err = doc.Float("f")
	require.ErrorIs(t, err, document.ErrInvalidFormat)

	_, err = doc.Float("g")
	require.ErrorIs(t, err, document.ErrNotFound)
}

func TestSection_StringList(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)

	tags, ok := doc.StringList("server.tags")
	require.True(t, ok)
	assert.Equal(t, []string{"api", "42"}, tags)

	_, ok = doc.StringList("server.host")
	assert.False(t, ok)

	_, ok = doc.StringList("server.none")
	assert.False(t, ok)

	empty := mustParse(t, "list: []\n")

	items, ok := empty.StringList("list")
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestSection_Keys(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)

	assert.Equal(t, []string{"server", "name"}, doc.Keys())

	server, ok := doc.Sub("server")
	require.True(t, ok)
	assert.Equal(t, []string{"host", "port", "tls", "timeout", "hex", "tags"}, server.Keys())
}

func TestSection_Sub(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sample)

	server, ok := doc.Sub("server")
	require.True(t, ok)

	port, err := server.Int("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	require.NoError(t, server.Set("port", 9090))

	port, err = doc.Int("server.port")
	require.NoError(t, err)
	assert.Equal(t, 9090, port)

	_, ok = doc.Sub("name")
	assert.False(t, ok)

	_, ok = doc.Sub("server.tags")
	assert.False(t, ok)

	_, ok = doc.Sub("absent")
	assert.False(t, ok)

	self, ok := doc.Sub("")
	require.True(t, ok)
	assert.Equal(t, doc.Keys(), self.Keys())
}

func TestSection_Paths(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "a:\n  b:\n    c: 1\n  d: 2\ne: 3\n")

	assert.Equal(t, []string{"a", "a.b", "a.b.c", "a.d", "e"}, doc.Paths())

	a, ok := doc.Sub("a")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "b.c", "d"}, a.Paths())

	empty, err := document.New()
	require.NoError(t, err)
	assert.Empty(t, empty.Paths())
}

func TestSection_Comments(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "# About a\na: 1 # one\nb: 2\n")

	comments, ok := doc.Comments("a")
	require.True(t, ok)
	assert.Equal(t, []string{"# About a"}, comments.Block)
	assert.Equal(t, "# one", comments.Inline)

	keyComments, ok := doc.KeyComments("a")
	require.True(t, ok)
	assert.Equal(t, []string{"# About a"}, keyComments.Block)

	comments, ok = doc.Comments("b")
	require.True(t, ok)
	assert.True(t, comments.IsZero())

	_, ok = doc.Comments("c")
	assert.False(t, ok)

	_, ok = doc.KeyComments("")
	assert.False(t, ok)
}

func TestSection_Bytes(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "db:\n  host: localhost # primary\n  port: 5432\n")

	db, ok := doc.Sub("db")
	require.True(t, ok)

	data, err := db.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "host: localhost # primary\nport: 5432\n", string(data))
}
