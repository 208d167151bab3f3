package styles

import (
	"testing"

	"github.com/tidyorg/orgchart/pkg/org"
)

func TestForNodeFillColors(t *testing.T) {
	tests := []struct {
		name   string
		status org.Status
		want   string
	}{
		{"permanent", org.StatusPermanent, ColorPermanent},
		{"contractor", org.StatusContractor, ColorContractor},
		{"leaving", org.StatusLeaving, ColorLeaving},
		{"starting", org.StatusStarting, ColorStarting},
		{"hiring", org.StatusHiring, ColorHiring},
		{"moving", org.StatusMoving, ColorMoving},
		{"unknown degrades to default", org.StatusUnknown, ColorDefault},
		{"out-of-range degrades to default", org.Status(99), ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForNode(tt.status, false)
			if got.FillColor != tt.want {
				t.Errorf("FillColor = %q, want %q", got.FillColor, tt.want)
			}
		})
	}
}

func TestForNodeBorder(t *testing.T) {
	if got := ForNode(org.StatusPermanent, true).BorderWidth; got != BorderManager {
		t.Errorf("manager BorderWidth = %g, want %g", got, BorderManager)
	}
	if got := ForNode(org.StatusPermanent, false).BorderWidth; got != BorderDefault {
		t.Errorf("non-manager BorderWidth = %g, want %g", got, BorderDefault)
	}
}

func TestForNodeDeterministic(t *testing.T) {
	// Repeated resolution of identical input must be identical.
	first := ForNode(org.StatusContractor, true)
	for range 10 {
		if got := ForNode(org.StatusContractor, true); got != first {
			t.Fatalf("ForNode not deterministic: %+v != %+v", got, first)
		}
	}
}

func TestForEdge(t *testing.T) {
	tests := []struct {
		name      string
		rel       org.Relation
		wantLine  string
		wantColor string
	}{
		{"direct solid", org.RelationDirect, LineSolid, ColorEdge},
		{"indirect dotted", org.RelationIndirect, LineDotted, ColorEdge},
		{"joining teal dotted", org.RelationJoining, LineDotted, ColorStarting},
		{"departing orange dotted", org.RelationDeparting, LineDotted, ColorLeaving},
		{"unknown degrades to direct", org.RelationUnknown, LineSolid, ColorEdge},
		{"out-of-range degrades to direct", org.Relation(99), LineSolid, ColorEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForEdge(tt.rel)
			if got.LineStyle != tt.wantLine {
				t.Errorf("LineStyle = %q, want %q", got.LineStyle, tt.wantLine)
			}
			if got.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", got.Color, tt.wantColor)
			}
		})
	}
}

func TestForPerson(t *testing.T) {
	p := &org.Person{ID: "x", Status: org.StatusLeaving, Manager: true}
	got := ForPerson(p)
	if got.FillColor != ColorLeaving || got.BorderWidth != BorderManager {
		t.Errorf("ForPerson = %+v, want leaving fill and manager border", got)
	}
}
