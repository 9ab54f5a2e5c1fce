package layoutfile

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/frames/pkg/design"
	"github.com/mesh-intelligence/frames/pkg/types"
)

// Layout file errors.
var (
	ErrNotNumeric       = errors.New("value is not numeric")
	ErrMissingName      = errors.New("name is required")
	ErrDuplicateFrame   = errors.New("duplicate frame name")
	ErrDuplicateGeneric = errors.New("duplicate generic name")
	ErrUnknownParent    = errors.New("parent must name an earlier frame")
	ErrUnknownGeneric   = errors.New("unknown generic")
	ErrRectWithCorners  = errors.New("rect cannot be combined with start or end")
)

// file mirrors the on-disk layout document.
type file struct {
	Vars     map[string]any `mapstructure:"vars"`
	Generics []genericDecl  `mapstructure:"generics"`
	Frames   []frameDecl    `mapstructure:"frames"`
}

type genericDecl struct {
	Name     string `mapstructure:"name"`
	Default  any    `mapstructure:"default"`
	Relation string `mapstructure:"relation"`
}

type frameDecl struct {
	Name     string                  `mapstructure:"name"`
	Parent   string                  `mapstructure:"parent"`
	Group    int                     `mapstructure:"group"`
	Depth    int                     `mapstructure:"depth"`
	Point    bool                    `mapstructure:"point"`
	Rect     *rectDecl               `mapstructure:"rect"`
	Start    *cornerDecl             `mapstructure:"start"`
	End      *cornerDecl             `mapstructure:"end"`
	Generics map[string]genericValue `mapstructure:"generics"`
}

type rectDecl struct {
	X any `mapstructure:"x"`
	Y any `mapstructure:"y"`
	W any `mapstructure:"w"`
	H any `mapstructure:"h"`
}

type cornerDecl struct {
	X         any    `mapstructure:"x"`
	Y         any    `mapstructure:"y"`
	Relation  string `mapstructure:"relation"`
	Anchor    string `mapstructure:"anchor"`
	XRelation string `mapstructure:"x_relation"`
	YRelation string `mapstructure:"y_relation"`
	XAnchor   string `mapstructure:"x_anchor"`
	YAnchor   string `mapstructure:"y_anchor"`
}

type genericValue struct {
	Value    any    `mapstructure:"value"`
	Relation string `mapstructure:"relation"`
}

// Layout is a loaded Design together with the names given to its frames and
// generics.
type Layout struct {
	Design *design.Design

	names    []string
	index    map[string]int
	generics []string
}

// Index returns the frame index for name.
func (l *Layout) Index(name string) (int, bool) {
	i, ok := l.index[name]
	return i, ok
}

// Name returns the name of frame i, or "" if i is out of range.
func (l *Layout) Name(i int) string {
	if i < 0 || i >= len(l.names) {
		return ""
	}
	return l.names[i]
}

// Names returns the frame names in index order.
func (l *Layout) Names() []string {
	return append([]string(nil), l.names...)
}

// GenericNames returns the generic names in index order.
func (l *Layout) GenericNames() []string {
	return append([]string(nil), l.generics...)
}

// Load reads the layout file at path. The format follows the file extension.
func Load(path string, logger zerolog.Logger) (*Layout, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	l, err := decode(v, logger)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Parse reads a layout document from r. format is "yaml", "toml" or "json".
func Parse(r io.Reader, format string, logger zerolog.Logger) (*Layout, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return decode(v, logger)
}

func decode(v *viper.Viper, logger zerolog.Logger) (*Layout, error) {
	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	b, err := newBuilder(f.Vars, logger)
	if err != nil {
		return nil, err
	}
	if err := b.declareGenerics(f.Generics); err != nil {
		return nil, err
	}
	for n, decl := range f.Frames {
		if err := b.addFrame(decl); err != nil {
			if decl.Name != "" {
				return nil, fmt.Errorf("frame %q: %w", decl.Name, err)
			}
			return nil, fmt.Errorf("frame #%d: %w", n, err)
		}
	}
	logger.Info().
		Str("design", b.layout.Design.ID()).
		Int("frames", b.layout.Design.Count()).
		Int("generics", b.layout.Design.GenericCount()).
		Msg("layout loaded")
	return b.layout, nil
}

// builder accumulates frames into a Layout.
type builder struct {
	layout   *Layout
	eval     *evaluator
	defaults []types.Property
	logger   zerolog.Logger
}

func newBuilder(vars map[string]any, logger zerolog.Logger) (*builder, error) {
	eval, err := newEvaluator(vars)
	if err != nil {
		return nil, err
	}
	return &builder{
		layout: &Layout{
			Design: design.New(),
			index:  map[string]int{},
		},
		eval:   eval,
		logger: logger,
	}, nil
}

func (b *builder) declareGenerics(decls []genericDecl) error {
	seen := map[string]bool{}
	for _, g := range decls {
		name := strings.ToLower(strings.TrimSpace(g.Name))
		if name == "" {
			return fmt.Errorf("generic #%d: %w", len(b.defaults), ErrMissingName)
		}
		if seen[name] {
			return fmt.Errorf("generic %q: %w", name, ErrDuplicateGeneric)
		}
		seen[name] = true
		p := types.DefaultGeneric()
		value, err := b.eval.number(g.Default)
		if err != nil {
			return fmt.Errorf("generic %q default: %w", name, err)
		}
		p.Value = value
		if g.Relation != "" {
			if p.Relation, err = types.ParseRelation(g.Relation); err != nil {
				return fmt.Errorf("generic %q: %w", name, err)
			}
		}
		if _, err := b.layout.Design.AppendGeneric(p.Value, p.Relation); err != nil {
			return fmt.Errorf("generic %q: %w", name, err)
		}
		b.defaults = append(b.defaults, p)
		b.layout.generics = append(b.layout.generics, name)
	}
	return nil
}

func (b *builder) genericIndex(name string) (int, bool) {
	for g, n := range b.layout.generics {
		if n == name {
			return g, true
		}
	}
	return 0, false
}

func (b *builder) addFrame(decl frameDecl) error {
	l := b.layout
	if decl.Name == "" {
		return ErrMissingName
	}
	if _, dup := l.index[decl.Name]; dup {
		return ErrDuplicateFrame
	}
	parent := types.NoParent
	if decl.Parent != "" {
		p, ok := l.index[decl.Parent]
		if !ok {
			return fmt.Errorf("%q: %w", decl.Parent, ErrUnknownParent)
		}
		parent = p
	}

	generics, err := b.frameGenerics(decl.Generics)
	if err != nil {
		return err
	}
	f := types.Frame{
		IsPoint:  decl.Point,
		Parent:   parent,
		GroupID:  decl.Group,
		Depth:    decl.Depth,
		Generics: generics,
	}
	if decl.Rect != nil {
		if decl.Start != nil || decl.End != nil {
			return ErrRectWithCorners
		}
		if err := b.rect(&f, decl.Rect); err != nil {
			return err
		}
	} else {
		if f.Start, err = b.corner(decl.Start); err != nil {
			return fmt.Errorf("start: %w", err)
		}
		if f.End, err = b.corner(decl.End); err != nil {
			return fmt.Errorf("end: %w", err)
		}
	}

	i, err := l.Design.Add(f)
	if err != nil {
		return err
	}
	l.index[decl.Name] = i
	l.names = append(l.names, decl.Name)
	b.logger.Debug().
		Str("frame", decl.Name).
		Int("index", i).
		Int("parent", parent).
		Msg("frame added")
	return nil
}

// rect fills both corners from the x/y/w/h shorthand: absolute on a root,
// relative to the parent start otherwise.
func (b *builder) rect(f *types.Frame, r *rectDecl) error {
	var vals [4]float32
	for n, raw := range []any{r.X, r.Y, r.W, r.H} {
		v, err := b.eval.number(raw)
		if err != nil {
			return fmt.Errorf("rect: %w", err)
		}
		vals[n] = v
	}
	relation := types.RelationRelative
	if f.Parent == types.NoParent {
		relation = types.RelationAbsolute
	}
	pos := types.Vector2{X: vals[0], Y: vals[1]}
	size := types.Vector2{X: vals[2], Y: vals[3]}
	f.Start = types.Uniform(pos, relation, types.AnchorStart)
	f.End = types.Uniform(pos.Add(size), relation, types.AnchorStart)
	return nil
}

// corner builds one corner. Omitted corners and omitted enums default to
// Relative and Start.
func (b *builder) corner(c *cornerDecl) (types.Property2, error) {
	p := types.Uniform(types.Vector2{}, types.RelationRelative, types.AnchorStart)
	if c == nil {
		return p, nil
	}
	x, err := b.eval.number(c.X)
	if err != nil {
		return p, fmt.Errorf("x: %w", err)
	}
	y, err := b.eval.number(c.Y)
	if err != nil {
		return p, fmt.Errorf("y: %w", err)
	}
	p.SetValues(types.Vector2{X: x, Y: y})

	relations := p.Relations()
	if relations.X, err = relationOr(firstSet(c.XRelation, c.Relation), relations.X); err != nil {
		return p, err
	}
	if relations.Y, err = relationOr(firstSet(c.YRelation, c.Relation), relations.Y); err != nil {
		return p, err
	}
	anchors := p.Anchors()
	if anchors.X, err = anchorOr(firstSet(c.XAnchor, c.Anchor), anchors.X); err != nil {
		return p, err
	}
	if anchors.Y, err = anchorOr(firstSet(c.YAnchor, c.Anchor), anchors.Y); err != nil {
		return p, err
	}
	p.SetRelations(relations)
	p.SetAnchors(anchors)
	return p, nil
}

// frameGenerics starts from the declared defaults and applies the frame's
// overrides.
func (b *builder) frameGenerics(values map[string]genericValue) ([]types.Property, error) {
	out := append([]types.Property(nil), b.defaults...)
	// Sorted so that the first error reported is stable.
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		g, ok := b.genericIndex(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownGeneric)
		}
		gv := values[name]
		if gv.Value != nil {
			v, err := b.eval.number(gv.Value)
			if err != nil {
				return nil, fmt.Errorf("generic %q: %w", name, err)
			}
			out[g].Value = v
		}
		if gv.Relation != "" {
			r, err := types.ParseRelation(gv.Relation)
			if err != nil {
				return nil, fmt.Errorf("generic %q: %w", name, err)
			}
			out[g].Relation = r
		}
	}
	return out, nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func relationOr(raw string, fallback types.Relation) (types.Relation, error) {
	if raw == "" {
		return fallback, nil
	}
	return types.ParseRelation(raw)
}

func anchorOr(raw string, fallback types.Anchor) (types.Anchor, error) {
	if raw == "" {
		return fallback, nil
	}
	return types.ParseAnchor(raw)
}
