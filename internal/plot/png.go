package plot

import (
	"io"

	"golang.org/x/xerrors"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	defaultWidth  = 12 // inches
	defaultHeight = 6
	defaultDPI    = 96
)

// PNGRenderer draws one stacked gonum plot per panel.
type PNGRenderer struct {
	DPI int // 0 means 96
}

var _ Renderer = PNGRenderer{}

// Render implements Renderer.
func (r PNGRenderer) Render(w io.Writer, f *Figure) error {
	if err := f.Validate(); err != nil {
		return err
	}

	rows := make([][]*gplot.Plot, len(f.Panels))
	for i, panel := range f.Panels {
		if panel.Title == "" && i == 0 {
			panel.Title = f.Title
		}
		p, err := buildPanel(panel)
		if err != nil {
			return xerrors.Errorf("png: panel %d: %w", i, err)
		}
		rows[i] = []*gplot.Plot{p}
	}

	width, height := f.Width, f.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	dpi := r.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(rows),
		Cols:      1,
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(12),
		PadY:      vg.Points(18),
	}
	canvases := gplot.Align(rows, tiles, dc)
	for i := range rows {
		rows[i][0].Draw(canvases[i][0])
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return xerrors.Errorf("png: encode: %w", err)
	}
	return nil
}

func buildPanel(panel Panel) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel
	p.Legend.Top = true

	if panel.Grid {
		g := plotter.NewGrid()
		if panel.DashedGrid {
			g.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			g.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(g)
	}

	for _, s := range panel.Series {
		if len(s.X) == 0 {
			continue
		}
		thumb, err := addSeries(p, s)
		if err != nil {
			return nil, err
		}
		if panel.Legend && s.Label != "" {
			p.Legend.Add(s.Label, thumb)
		}
	}
	return p, nil
}

func addSeries(p *gplot.Plot, s Series) (gplot.Thumbnailer, error) {
	c, err := ParseColor(s.Color)
	if err != nil {
		return nil, err
	}
	c = withAlpha(c, s.Alpha)

	xys := make(plotter.XYs, len(s.X))
	for i := range s.X {
		xys[i].X = s.X[i]
		xys[i].Y = s.Y[i]
	}

	switch s.Kind {
	case KindScatter:
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = c
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(sizeOr(s, 1.6))
		p.Add(sc)
		return sc, nil
	default:
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(sizeOr(s, 1))
		if s.Kind == KindDashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(l)
		return l, nil
	}
}

func sizeOr(s Series, def float64) float64 {
	if s.Width > 0 {
		return s.Width
	}
	return def
}
