package scene

import (
	"github.com/google/uuid"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Shape kinds.
const (
	KindText      = "text"
	KindGeo       = "geo"
	KindConnector = "connector"
	KindFrame     = "frame"
)

// Font families for text shapes.
const (
	FontDraw  = "draw"
	FontSans  = "sans"
	FontSerif = "serif"
	FontMono  = "mono"
)

// Size classes for text shapes.
const (
	SizeS  = "s"
	SizeM  = "m"
	SizeL  = "l"
	SizeXL = "xl"
)

// Alignment values for text and labels.
const (
	AlignStart  = "start"
	AlignMiddle = "middle"
	AlignEnd    = "end"
)

// Geometry kinds for geo shapes.
const (
	GeometryRectangle = "rectangle"
	GeometryEllipse   = "ellipse"
	GeometryCloud     = "cloud"
	GeometryArrow     = "arrow"
)

// Fill styles for geo shapes.
const (
	FillNone  = "none"
	FillSemi  = "semi"
	FillSolid = "solid"
)

// Outline (dash) styles for geo shapes.
const (
	DashDraw   = "draw"
	DashSolid  = "solid"
	DashDashed = "dashed"
)

// Thickness classes for connectors.
const (
	ThicknessThin  = "thin"
	ThicknessThick = "thick"
)

// =============================================================================
// Metadata
// =============================================================================

// Metadata stores arbitrary key-value pairs attached to shapes.
// It is used to stamp board-wide markers (e.g. the onboarding seed tag)
// onto persisted shapes. Metadata maps are never nil on shapes built
// through the constructors in this package, but shapes loaded from
// external engines may carry a nil map - callers must tolerate that.
type Metadata map[string]any

// =============================================================================
// Shape - Tagged Descriptor Variant
// =============================================================================

// Point is a 2D coordinate in page space.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Shape is the unified descriptor for all scene objects.
//
// This is a discriminated union type - check Kind to determine which
// property bag is populated:
//
//	Text ("text"):      Text props (body, font, size, align, scale)
//	Geo ("geo"):        Geo props (dimensions, geometry, color, fill, label)
//	Connector:          Connector props (endpoints, color, arrowheads)
//	Frame ("frame"):    Frame props (dimensions, name)
//
// Shared fields (all kinds):
//   - ID: unique identifier, fresh per descriptor
//   - X, Y: position in page space
//   - ParentID: optional containing frame (empty = page-level)
//   - Meta: free-form metadata map
type Shape struct {
	ID       string   `json:"id" bson:"id"`
	Kind     string   `json:"kind" bson:"kind"`
	X        float64  `json:"x" bson:"x"`
	Y        float64  `json:"y" bson:"y"`
	ParentID string   `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	Meta     Metadata `json:"meta,omitempty" bson:"meta,omitempty"`

	Text      *TextProps      `json:"text,omitempty" bson:"text,omitempty"`
	Geo       *GeoProps       `json:"geo,omitempty" bson:"geo,omitempty"`
	Connector *ConnectorProps `json:"connector,omitempty" bson:"connector,omitempty"`
	Frame     *FrameProps     `json:"frame,omitempty" bson:"frame,omitempty"`
}

// TextProps describes a free-standing text block.
type TextProps struct {
	Body  string  `json:"body" bson:"body"`
	Font  string  `json:"font,omitempty" bson:"font,omitempty"`
	Size  string  `json:"size,omitempty" bson:"size,omitempty"`
	Align string  `json:"align,omitempty" bson:"align,omitempty"`
	Scale float64 `json:"scale,omitempty" bson:"scale,omitempty"`
}

// GeoProps describes a bounded geometric shape (card, ellipse, cloud).
type GeoProps struct {
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Geometry string  `json:"geometry,omitempty" bson:"geometry,omitempty"`
	Color    string  `json:"color,omitempty" bson:"color,omitempty"`
	Fill     string  `json:"fill,omitempty" bson:"fill,omitempty"`
	Label    string  `json:"label,omitempty" bson:"label,omitempty"`
	HAlign   string  `json:"h_align,omitempty" bson:"h_align,omitempty"`
	VAlign   string  `json:"v_align,omitempty" bson:"v_align,omitempty"`
	Dash     string  `json:"dash,omitempty" bson:"dash,omitempty"`
}

// ConnectorProps describes a line between two points with optional arrowheads.
type ConnectorProps struct {
	Start      Point  `json:"start" bson:"start"`
	End        Point  `json:"end" bson:"end"`
	Color      string `json:"color,omitempty" bson:"color,omitempty"`
	Thickness  string `json:"thickness,omitempty" bson:"thickness,omitempty"`
	ArrowStart bool   `json:"arrow_start,omitempty" bson:"arrow_start,omitempty"`
	ArrowEnd   bool   `json:"arrow_end,omitempty" bson:"arrow_end,omitempty"`
}

// FrameProps describes a bounded container frame.
type FrameProps struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Name   string  `json:"name,omitempty" bson:"name,omitempty"`
}

// =============================================================================
// Shape Predicates & Geometry
// =============================================================================

// IsText reports whether the shape is a text block.
func (s Shape) IsText() bool { return s.Kind == KindText }

// IsGeo reports whether the shape is a geo shape.
func (s Shape) IsGeo() bool { return s.Kind == KindGeo }

// IsConnector reports whether the shape is a connector.
func (s Shape) IsConnector() bool { return s.Kind == KindConnector }

// IsFrame reports whether the shape is a container frame.
func (s Shape) IsFrame() bool { return s.Kind == KindFrame }

// Left returns the shape's left edge x-coordinate.
func (s Shape) Left() float64 { return s.X }

// Right returns the shape's right edge x-coordinate.
// For shapes without a bounded width the position is returned unchanged.
func (s Shape) Right() float64 { return s.X + s.width() }

// CenterY returns the vertical center of the shape's bounds.
func (s Shape) CenterY() float64 { return s.Y + s.height()/2 }

func (s Shape) width() float64 {
	switch {
	case s.Geo != nil:
		return s.Geo.Width
	case s.Frame != nil:
		return s.Frame.Width
	}
	return 0
}

func (s Shape) height() float64 {
	switch {
	case s.Geo != nil:
		return s.Geo.Height
	case s.Frame != nil:
		return s.Frame.Height
	}
	return 0
}

// MetaValue returns the metadata value for key, or nil when the shape has
// no metadata map or the key is absent.
func (s Shape) MetaValue(key string) any {
	if s.Meta == nil {
		return nil
	}
	return s.Meta[key]
}

// =============================================================================
// Constructors
// =============================================================================

// NewTextBlock creates a page-level text block descriptor at (x, y)
// with a fresh unique identifier and an initialized metadata map.
func NewTextBlock(x, y float64, props TextProps) Shape {
	return Shape{
		ID:   NewShapeID(),
		Kind: KindText,
		X:    x,
		Y:    y,
		Meta: Metadata{},
		Text: &props,
	}
}

// NewGeoCard creates a page-level geo shape descriptor at (x, y)
// with a fresh unique identifier and an initialized metadata map.
func NewGeoCard(x, y float64, props GeoProps) Shape {
	return Shape{
		ID:   NewShapeID(),
		Kind: KindGeo,
		X:    x,
		Y:    y,
		Meta: Metadata{},
		Geo:  &props,
	}
}

// NewConnector creates a page-level connector descriptor. The shape's
// position is anchored at the connector's start point.
func NewConnector(props ConnectorProps) Shape {
	return Shape{
		ID:        NewShapeID(),
		Kind:      KindConnector,
		X:         props.Start.X,
		Y:         props.Start.Y,
		Meta:      Metadata{},
		Connector: &props,
	}
}

// NewFrame creates a page-level container frame descriptor at (x, y).
func NewFrame(x, y float64, props FrameProps) Shape {
	return Shape{
		ID:    NewShapeID(),
		Kind:  KindFrame,
		X:     x,
		Y:     y,
		Meta:  Metadata{},
		Frame: &props,
	}
}

// NewShapeID generates a fresh unique shape identifier.
// IDs are prefixed with "shape:" to match the engine's handle format.
func NewShapeID() string {
	return "shape:" + uuid.NewString()
}
