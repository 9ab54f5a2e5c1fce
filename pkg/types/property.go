package types

// Property is a single value on one axis together with its relation to the
// parent frame and the anchor it is measured from.
type Property struct {
	Value    float32
	Relation Relation
	Anchor   Anchor
}

// Valid reports whether both enumerations hold declared values.
func (p Property) Valid() bool {
	return p.Relation.Valid() && p.Anchor.Valid()
}

// DefaultGeneric returns the property used to pad frames when the
// store-wide generic count grows: zero, relative, start-anchored.
func DefaultGeneric() Property {
	return Property{Value: 0, Relation: RelationRelative, Anchor: AnchorStart}
}

// Property2 holds one Property per axis.
type Property2 struct {
	X Property
	Y Property
}

// NewProperty2 builds a Property2 from per-axis values, relations and anchors.
func NewProperty2(values Vector2, relations Vector2Relation, anchors Vector2Anchor) Property2 {
	return Property2{
		X: Property{Value: values.X, Relation: relations.X, Anchor: anchors.X},
		Y: Property{Value: values.Y, Relation: relations.Y, Anchor: anchors.Y},
	}
}

// Uniform builds a Property2 whose axes share one relation and anchor.
func Uniform(values Vector2, relation Relation, anchor Anchor) Property2 {
	return NewProperty2(values, Vector2Relation{relation, relation}, Vector2Anchor{anchor, anchor})
}

// Axis returns the property for the given axis.
func (p Property2) Axis(a Axis) Property {
	if a == AxisY {
		return p.Y
	}
	return p.X
}

// Values returns the raw values of both axes.
func (p Property2) Values() Vector2 {
	return Vector2{X: p.X.Value, Y: p.Y.Value}
}

// Relations returns the relations of both axes.
func (p Property2) Relations() Vector2Relation {
	return Vector2Relation{X: p.X.Relation, Y: p.Y.Relation}
}

// Anchors returns the anchors of both axes.
func (p Property2) Anchors() Vector2Anchor {
	return Vector2Anchor{X: p.X.Anchor, Y: p.Y.Anchor}
}

// SetValues replaces the values and keeps relations and anchors.
func (p *Property2) SetValues(v Vector2) {
	p.X.Value, p.Y.Value = v.X, v.Y
}

// SetRelations replaces the relations and keeps values and anchors.
func (p *Property2) SetRelations(r Vector2Relation) {
	p.X.Relation, p.Y.Relation = r.X, r.Y
}

// SetAnchors replaces the anchors and keeps values and relations.
func (p *Property2) SetAnchors(a Vector2Anchor) {
	p.X.Anchor, p.Y.Anchor = a.X, a.Y
}

// Valid reports whether both axes are valid.
func (p Property2) Valid() bool {
	return p.X.Valid() && p.Y.Valid()
}
