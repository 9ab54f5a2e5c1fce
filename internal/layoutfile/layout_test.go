package layoutfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/frames/pkg/types"
)

const sampleYAML = `
vars:
  margin: 8
  half: "1/2"
generics:
  - name: opacity
    default: 1
    relation: scale
  - name: z
frames:
  - name: window
    rect: {x: 0, y: 0, w: 800, h: 600}
  - name: panel
    parent: window
    group: 1
    depth: 1
    start: {x: margin, y: margin}
    end: {x: "-margin", y: "-margin", anchor: end}
    generics:
      opacity: {value: 0.5}
  - name: dot
    parent: panel
    point: true
    depth: 2
    start: {x: half, y: "margin * 2", x_relation: scale, y_relation: relative}
    generics:
      z: {value: 3, relation: absolute}
`

func parseYAML(t *testing.T, doc string) (*Layout, error) {
	t.Helper()
	return Parse(strings.NewReader(doc), "yaml", zerolog.Nop())
}

func vec(x, y float32) types.Vector2 {
	return types.Vector2{X: x, Y: y}
}

func TestParseSample(t *testing.T) {
	l, err := parseYAML(t, sampleYAML)
	require.NoError(t, err)
	d := l.Design

	require.Equal(t, 3, d.Count())
	assert.Equal(t, []string{"window", "panel", "dot"}, l.Names())
	assert.Equal(t, []string{"opacity", "z"}, l.GenericNames())

	window, ok := l.Index("window")
	require.True(t, ok)
	panel, _ := l.Index("panel")
	dot, _ := l.Index("dot")

	assert.Equal(t, types.Bounds{Start: vec(0, 0), End: vec(800, 600), Size: vec(800, 600)}, d.Bounds(window))
	assert.Equal(t, types.Bounds{Start: vec(8, 8), End: vec(792, 592), Size: vec(784, 584)}, d.Bounds(panel))
	assert.Equal(t, types.Bounds{Start: vec(400, 24), End: vec(400, 24)}, d.Bounds(dot))

	assert.Equal(t, 1, d.Group(panel))
	assert.Equal(t, 2, d.Depth(dot))
	assert.True(t, d.IsPoint(dot))

	assert.Equal(t, float32(1), d.GenericAbsolute(window, 0))
	assert.Equal(t, float32(0.5), d.GenericAbsolute(panel, 0))
	assert.Equal(t, float32(0.5), d.GenericAbsolute(dot, 0), "declared default scales the parent")
	assert.Equal(t, float32(3), d.GenericAbsolute(dot, 1))
	assert.Equal(t, types.RelationAbsolute, d.GenericRelation(dot, 1))
}

func TestParseCornerDefaults(t *testing.T) {
	l, err := parseYAML(t, `
frames:
  - name: root
    start: {x: 1, y: 2}
`)
	require.NoError(t, err)
	assert.Equal(t, types.Vector2Relation{X: types.RelationRelative, Y: types.RelationRelative}, l.Design.StartRelations(0))
	assert.Equal(t, types.Vector2Anchor{}, l.Design.EndAnchors(0))
	assert.Equal(t, vec(0, 0), l.Design.EndOffset(0))
}

func TestParsePerAxisOverrides(t *testing.T) {
	l, err := parseYAML(t, `
frames:
  - name: root
    end: {x: 1, y: 2, relation: scale, anchor: size, y_relation: absolute, x_anchor: center}
`)
	require.NoError(t, err)
	assert.Equal(t, types.Vector2Relation{X: types.RelationScale, Y: types.RelationAbsolute}, l.Design.EndRelations(0))
	assert.Equal(t, types.Vector2Anchor{X: types.AnchorCenter, Y: types.AnchorSize}, l.Design.EndAnchors(0))
}

func TestParseRectUnderParentIsRelative(t *testing.T) {
	l, err := parseYAML(t, `
frames:
  - name: root
    rect: {x: 100, y: 100, w: 50, h: 50}
  - name: child
    parent: root
    rect: {x: 5, y: "2 + 3", w: 10, h: 10}
`)
	require.NoError(t, err)
	child, _ := l.Index("child")
	assert.Equal(t, types.Bounds{Start: vec(105, 105), End: vec(115, 115), Size: vec(10, 10)}, l.Design.Bounds(child))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "duplicate frame",
			doc: `
frames:
  - {name: a}
  - {name: a}
`,
			wantErr: ErrDuplicateFrame,
		},
		{
			name: "forward parent",
			doc: `
frames:
  - {name: a, parent: b}
  - {name: b}
`,
			wantErr: ErrUnknownParent,
		},
		{
			name: "missing name",
			doc: `
frames:
  - {depth: 1}
`,
			wantErr: ErrMissingName,
		},
		{
			name: "unknown generic",
			doc: `
frames:
  - name: a
    generics: {alpha: {value: 1}}
`,
			wantErr: ErrUnknownGeneric,
		},
		{
			name: "duplicate generic",
			doc: `
generics:
  - {name: alpha}
  - {name: Alpha}
`,
			wantErr: ErrDuplicateGeneric,
		},
		{
			name: "rect with corners",
			doc: `
frames:
  - name: a
    rect: {x: 0, y: 0, w: 1, h: 1}
    start: {x: 0, y: 0}
`,
			wantErr: ErrRectWithCorners,
		},
		{
			name: "non-numeric expression",
			doc: `
frames:
  - name: a
    start: {x: "'wide'", y: 0}
`,
			wantErr: ErrNotNumeric,
		},
		{
			name: "non-numeric value",
			doc: `
frames:
  - name: a
    start: {x: [1, 2], y: 0}
`,
			wantErr: ErrNotNumeric,
		},
		{
			name: "boolean value",
			doc: `
frames:
  - name: a
    rect: {x: true, y: 0, w: 1, h: 1}
`,
			wantErr: ErrNotNumeric,
		},
		{
			name: "bad anchor",
			doc: `
frames:
  - name: a
    start: {x: 0, y: 0, anchor: middle}
`,
			wantErr: types.ErrInvalidAnchor,
		},
		{
			name: "bad relation",
			doc: `
generics:
  - {name: alpha, relation: sideways}
`,
			wantErr: types.ErrInvalidRelation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseYAML(t, tt.doc)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseUnknownVariable(t *testing.T) {
	_, err := parseYAML(t, `
frames:
  - name: a
    start: {x: gutter, y: 0}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `frame "a"`)
}

func TestVarsReferToEarlierNames(t *testing.T) {
	l, err := parseYAML(t, `
vars:
  a: 4
  b: "a * 3"
frames:
  - name: root
    rect: {x: b, y: a, w: 1, h: 1}
`)
	require.NoError(t, err)
	assert.Equal(t, vec(12, 4), l.Design.StartAbsolute(0))
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "layout.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`
[[frames]]
name = "root"

[frames.rect]
x = 10
y = 20
w = 30
h = 40
`), 0o644))
	jsonPath := filepath.Join(dir, "layout.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"frames": [{"name": "root", "rect": {"x": 10, "y": 20, "w": 30, "h": 40}}]}`), 0o644))

	for _, path := range []string{tomlPath, jsonPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			l, err := Load(path, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, types.Bounds{Start: vec(10, 20), End: vec(40, 60), Size: vec(30, 40)}, l.Design.Bounds(0))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestLoadLogsFrames(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := Parse(strings.NewReader(sampleYAML), "yaml", logger)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"frame":"panel"`)
	assert.Contains(t, buf.String(), `"frames":3`)
}

func TestLayoutNameOutOfRange(t *testing.T) {
	l, err := parseYAML(t, sampleYAML)
	require.NoError(t, err)
	assert.Equal(t, "", l.Name(-1))
	assert.Equal(t, "", l.Name(3))
	_, ok := l.Index("nope")
	assert.False(t, ok)
}
