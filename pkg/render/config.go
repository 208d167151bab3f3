package render

import (
	"slices"

	apperrors "github.com/tidyorg/orgchart/pkg/errors"
)

// Curvature styles for connectors. The arc styles draw smooth splines, the
// angle styles draw orthogonal right-angle connectors. The 3-suffixed aliases
// are accepted for compatibility with older org files.
const (
	StyleArc    = "arc"
	StyleArc3   = "arc3"
	StyleAngle  = "angle"
	StyleAngle3 = "angle3"
)

// ValidStyles lists the accepted curvature styles.
var ValidStyles = []string{StyleArc, StyleArc3, StyleAngle, StyleAngle3}

// Defaults for layout parameters.
const (
	// DefaultNodeSize is the box width in inches.
	DefaultNodeSize = 1.8
	// DefaultMargin is the horizontal separation between boxes in inches.
	DefaultMargin = 0.1
	// DefaultFontSize is the label font size in points.
	DefaultFontSize = 16.0
	// DefaultOffset controls vertical separation between layers; the rank
	// separation in inches is Offset/10.
	DefaultOffset = 7.0
	// DefaultScale multiplies the raster resolution (72 dpi base).
	DefaultScale = 2.0
	// DefaultStyle is the default connector curvature.
	DefaultStyle = StyleArc
)

// Config carries the layout parameters applied uniformly at export time.
// It is passed explicitly per call and never stored in the graph; zero-value
// fields are filled in by ApplyDefaults.
type Config struct {
	NodeSize float64 // box width in inches
	Margin   float64 // horizontal box separation in inches
	FontSize float64 // label font size in points
	Offset   float64 // layer separation, in tenths of an inch
	Scale    float64 // raster resolution multiplier
	CStyle   string  // connector curvature: arc, arc3, angle, angle3
}

// Default returns a Config populated with the documented defaults.
func Default() Config {
	return Config{
		NodeSize: DefaultNodeSize,
		Margin:   DefaultMargin,
		FontSize: DefaultFontSize,
		Offset:   DefaultOffset,
		Scale:    DefaultScale,
		CStyle:   DefaultStyle,
	}
}

// ApplyDefaults fills zero-valued fields with the documented defaults.
// Explicitly set fields, including negative ones, are left alone so that
// Validate can reject them.
func (c *Config) ApplyDefaults() {
	if c.NodeSize == 0 {
		c.NodeSize = DefaultNodeSize
	}
	if c.Margin == 0 {
		c.Margin = DefaultMargin
	}
	if c.FontSize == 0 {
		c.FontSize = DefaultFontSize
	}
	if c.Offset == 0 {
		c.Offset = DefaultOffset
	}
	if c.Scale == 0 {
		c.Scale = DefaultScale
	}
	if c.CStyle == "" {
		c.CStyle = DefaultStyle
	}
}

// Validate checks every parameter against its valid range. Out-of-range
// values indicate a misconfiguration, so they are reported as RENDER_ERROR
// before any layout or file output happens.
func (c Config) Validate() error {
	if c.NodeSize <= 0 {
		return apperrors.New(apperrors.ErrCodeRender, "node size must be positive, got %g", c.NodeSize)
	}
	if c.Margin < 0 {
		return apperrors.New(apperrors.ErrCodeRender, "margin must not be negative, got %g", c.Margin)
	}
	if c.FontSize <= 0 {
		return apperrors.New(apperrors.ErrCodeRender, "font size must be positive, got %g", c.FontSize)
	}
	if c.Offset < 0 {
		return apperrors.New(apperrors.ErrCodeRender, "offset must not be negative, got %g", c.Offset)
	}
	if c.Scale <= 0 {
		return apperrors.New(apperrors.ErrCodeRender, "scale must be positive, got %g", c.Scale)
	}
	if !slices.Contains(ValidStyles, c.CStyle) {
		return apperrors.New(apperrors.ErrCodeRender,
			"invalid style %q (must be one of: arc, arc3, angle, angle3)", c.CStyle)
	}
	return nil
}

// Orthogonal reports whether the configured curvature draws right-angle
// connectors instead of smooth arcs.
func (c Config) Orthogonal() bool {
	return c.CStyle == StyleAngle || c.CStyle == StyleAngle3
}
