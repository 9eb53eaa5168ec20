package plot

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

// Kind selects how a series is drawn.
type Kind int

const (
	KindLine Kind = iota
	KindDashed
	KindScatter
)

var kindNames = [...]string{"line", "dashed", "scatter"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, core.InvalidParameter("unknown series kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if n == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return core.InvalidParameter("unknown series kind %q", string(b))
}

// Series is one curve or point set.
type Series struct {
	Label string    `json:"label"`
	Color string    `json:"color"`           // name ("red") or "#rrggbb"
	Kind  Kind      `json:"kind"`
	Alpha float64   `json:"alpha"`           // 0 means opaque
	Width float64   `json:"width,omitempty"` // line width or marker radius in points
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// Panel is one set of axes.
type Panel struct {
	Title      string   `json:"title"`
	XLabel     string   `json:"x_label,omitempty"`
	YLabel     string   `json:"y_label,omitempty"`
	Grid       bool     `json:"grid"`
	DashedGrid bool     `json:"dashed_grid,omitempty"`
	Legend     bool     `json:"legend"`
	Series     []Series `json:"series"`
}

// Figure is a vertical stack of panels. Width and Height are in inches.
type Figure struct {
	Name   string  `json:"name"`
	Title  string  `json:"title"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Panels []Panel `json:"panels"`
}

// Renderer writes a figure to w.
type Renderer interface {
	Render(w io.Writer, f *Figure) error
}

// Validate checks that the figure has panels, that every series has as
// many x as y values and that every kind and color is known.
func (f *Figure) Validate() error {
	if f == nil || len(f.Panels) == 0 {
		return core.InvalidParameter("figure has no panels")
	}
	for i, p := range f.Panels {
		for j, s := range p.Series {
			if len(s.X) != len(s.Y) {
				return core.ShapeMismatch(fmt.Sprintf("panel %d series %q", i, s.Label), len(s.X), len(s.Y))
			}
			if s.Kind < 0 || int(s.Kind) >= len(kindNames) {
				return core.InvalidParameter("panel %d series %q: unknown kind %d", i, s.Label, int(s.Kind))
			}
			if _, err := ParseColor(s.Color); err != nil {
				return fmt.Errorf("panel %d series %d: %w", i, j, err)
			}
			if s.Alpha < 0 || s.Alpha > 1 {
				return core.InvalidParameter("panel %d series %q: alpha must be in [0, 1]: %v", i, s.Label, s.Alpha)
			}
		}
	}
	return nil
}

var namedColors = map[string]color.NRGBA{
	"":       {A: 255},
	"black":  {A: 255},
	"red":    {R: 255, A: 255},
	"green":  {G: 128, A: 255},
	"blue":   {B: 255, A: 255},
	"orange": {R: 255, G: 165, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
	"grey":   {R: 128, G: 128, B: 128, A: 255},
}

// ParseColor resolves a color name or a "#rrggbb" hex triplet. The empty
// string is black.
func ParseColor(s string) (color.NRGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	return color.NRGBA{}, core.InvalidParameter("unknown color %q", s)
}

// withAlpha applies a series alpha, 0 meaning opaque.
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha > 0 && alpha < 1 {
		c.A = uint8(alpha*255 + 0.5)
	}
	return c
}
