// Package styles maps domain attributes to their visual encoding.
//
// The mapping is a closed decision table: employment status selects the fill
// color, the manager flag selects the border weight, and the relationship
// kind selects the line style. Resolution is pure and total - it never fails,
// and any value outside the closed sets degrades to the documented default so
// that rendering stays robust against partial or evolving input data.
package styles

import "github.com/tidyorg/orgchart/pkg/org"

// Colors are Graphviz X11 color names, so both exporters agree on them.
const (
	ColorPermanent  = "darkgreen"
	ColorContractor = "grey"
	ColorLeaving    = "orange"
	ColorStarting   = "teal"
	ColorHiring     = "red"
	ColorMoving     = "lightgreen"

	// ColorDefault is the baseline fill for absent or unrecognized statuses.
	ColorDefault = ColorPermanent

	// ColorEdge is the line color for ordinary reporting edges.
	ColorEdge = "forestgreen"
)

// Border weights in points.
const (
	BorderManager = 5.0
	BorderDefault = 1.0
)

// Line styles for edges.
const (
	LineSolid  = "solid"
	LineDotted = "dotted"
)

// NodeStyle is the resolved visual encoding of a person box.
type NodeStyle struct {
	FillColor   string
	FontColor   string
	BorderWidth float64
	BorderColor string
}

// EdgeStyle is the resolved visual encoding of a reporting edge.
type EdgeStyle struct {
	LineStyle string
	Color     string
	Weight    float64
}

// fillColors is the status decision table. Statuses not present here fall
// back to ColorDefault.
var fillColors = map[org.Status]string{
	org.StatusPermanent:  ColorPermanent,
	org.StatusContractor: ColorContractor,
	org.StatusLeaving:    ColorLeaving,
	org.StatusStarting:   ColorStarting,
	org.StatusHiring:     ColorHiring,
	org.StatusMoving:     ColorMoving,
}

// edgeStyles is the relation decision table. Relations not present here fall
// back to the direct-management style.
var edgeStyles = map[org.Relation]EdgeStyle{
	org.RelationDirect:    {LineStyle: LineSolid, Color: ColorEdge, Weight: 4},
	org.RelationIndirect:  {LineStyle: LineDotted, Color: ColorEdge, Weight: 4},
	org.RelationJoining:   {LineStyle: LineDotted, Color: ColorStarting, Weight: 4},
	org.RelationDeparting: {LineStyle: LineDotted, Color: ColorLeaving, Weight: 4},
}

// ForNode resolves the visual encoding of a person. Managers get a thick
// black border; everyone else gets the default hairline.
func ForNode(status org.Status, manager bool) NodeStyle {
	s := NodeStyle{
		FillColor:   ColorDefault,
		FontColor:   "white",
		BorderWidth: BorderDefault,
		BorderColor: "black",
	}
	if fill, ok := fillColors[status]; ok {
		s.FillColor = fill
	}
	if manager {
		s.BorderWidth = BorderManager
	}
	return s
}

// ForPerson resolves the visual encoding of p.
func ForPerson(p *org.Person) NodeStyle {
	return ForNode(p.Status, p.Manager)
}

// ForEdge resolves the visual encoding of a reporting relationship.
func ForEdge(rel org.Relation) EdgeStyle {
	if s, ok := edgeStyles[rel]; ok {
		return s
	}
	return edgeStyles[org.RelationDirect]
}
