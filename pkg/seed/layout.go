package seed

import (
	"github.com/flowboardhq/flowboard/pkg/scene"
)

// =============================================================================
// Layout Constants - Single Source of Truth
// =============================================================================

// Offsets are fixed constants relative to the seed origin. The resolved
// reference frame is only an existence/type gate; its bounds never feed
// into these values.
const (
	// leftColumnOffset is the x distance from the origin to the left
	// column where the timeline cards and the features block start.
	leftColumnOffset = 100.0

	// titleRise lifts the title above the top offset.
	titleRise = 60.0

	// subtitleDrop places the subtitle 120px below the title.
	subtitleDrop = 60.0

	// guideDrop places the walkthrough (and the features block) below
	// the subtitle.
	guideDrop = 190.0

	// featuresShift moves the features block right of the left column.
	featuresShift = 600.0

	// warningDrop places the footer warning below the top offset.
	warningDrop = 500.0

	// timelineDrop places the card row below the top offset.
	timelineDrop = guideDrop + 100.0

	// Card dimensions and spacing for the three-step timeline.
	cardWidth  = 320.0
	cardHeight = 150.0
	cardGap    = 80.0

	// connectorInset is the clearance between a connector endpoint and
	// the adjacent card edge.
	connectorInset = 10.0
)

// DefaultOrigin is the seed origin for fresh boards. All onboarding
// geometry hangs off this point in page space.
var DefaultOrigin = scene.Point{X: 0, Y: 0}

// =============================================================================
// Timeline Steps
// =============================================================================

// Step is one card in the onboarding timeline.
type Step struct {
	Label string
	Color string
}

// DefaultSteps is the three-step storyboard walkthrough. Each step gets a
// distinct stroke/label color; connectors inherit the color of the card
// they leave from.
var DefaultSteps = []Step{
	{Label: "Initial Frame", Color: "blue"},
	{Label: "Annotate", Color: "violet"},
	{Label: "Generate Clip", Color: "orange"},
}

// =============================================================================
// Onboarding Copy
// =============================================================================

const (
	titleBody    = "Welcome to FlowBoard"
	subtitleBody = "Turn rough storyboards into animated clips, one frame at a time."

	guideBody = "1. Sketch your opening scene inside the frame\n" +
		"2. Annotate motion with arrows and notes\n" +
		"3. Generate a clip for the frame\n" +
		"4. Repeat with new frames, then merge the clips"

	featuresBody = "Tips\n" +
		"- Drag shapes anywhere, the frame is just a guide\n" +
		"- Arrows between cards show the flow\n" +
		"- Everything on this board is editable"

	warningBody = "clip generation takes a few minutes per frame"
)

// =============================================================================
// Layout Generator
// =============================================================================

// Plan computes the full onboarding layout for the given origin and steps.
// It is a pure function: identical inputs yield structurally identical
// descriptors in a fixed order (identifiers are fresh on every call).
//
// Output order: title, subtitle, walkthrough, features, warning, then one
// geo card per step left to right, then one connector between each
// adjacent pair of cards. An empty step list yields the text blocks only.
//
// Every descriptor is stamped with the seed marker before it is returned.
func Plan(origin scene.Point, steps []Step) []scene.Shape {
	left := origin.X + leftColumnOffset
	top := origin.Y

	shapes := []scene.Shape{
		scene.NewTextBlock(origin.X, top-titleRise, scene.TextProps{
			Body:  titleBody,
			Font:  scene.FontDraw,
			Size:  scene.SizeL,
			Align: scene.AlignStart,
			Scale: 2,
		}),
		scene.NewTextBlock(origin.X, top+subtitleDrop, scene.TextProps{
			Body:  subtitleBody,
			Font:  scene.FontDraw,
			Size:  scene.SizeM,
			Align: scene.AlignStart,
			Scale: 1,
		}),
		scene.NewTextBlock(origin.X, top+guideDrop, scene.TextProps{
			Body:  guideBody,
			Font:  scene.FontDraw,
			Size:  scene.SizeS,
			Align: scene.AlignStart,
			Scale: 1,
		}),
		scene.NewTextBlock(left+featuresShift, top+guideDrop, scene.TextProps{
			Body:  featuresBody,
			Font:  scene.FontDraw,
			Size:  scene.SizeS,
			Align: scene.AlignStart,
			Scale: 1,
		}),
		scene.NewTextBlock(origin.X, top+warningDrop, scene.TextProps{
			Body:  warningBody,
			Font:  scene.FontMono,
			Size:  scene.SizeL,
			Align: scene.AlignStart,
			Scale: 1,
		}),
	}

	cards := make([]scene.Shape, len(steps))
	for i, step := range steps {
		cards[i] = scene.NewGeoCard(left+float64(i)*(cardWidth+cardGap), top+timelineDrop, scene.GeoProps{
			Width:    cardWidth,
			Height:   cardHeight,
			Geometry: scene.GeometryRectangle,
			Color:    step.Color,
			Fill:     scene.FillSolid,
			Label:    step.Label,
			HAlign:   scene.AlignMiddle,
			VAlign:   scene.AlignMiddle,
			Dash:     scene.DashDraw,
		})
	}
	shapes = append(shapes, cards...)

	for i := 0; i+1 < len(cards); i++ {
		y := cards[i].CenterY()
		shapes = append(shapes, scene.NewConnector(scene.ConnectorProps{
			Start:     scene.Point{X: cards[i].Right() + connectorInset, Y: y},
			End:       scene.Point{X: cards[i+1].Left() - connectorInset, Y: y},
			Color:     steps[i].Color,
			Thickness: scene.ThicknessThin,
			ArrowEnd:  true,
		}))
	}

	for i := range shapes {
		shapes[i].Meta[Tag] = TagValue
	}
	return shapes
}
