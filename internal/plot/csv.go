package plot

import (
	"encoding/csv"
	"io"
	"strconv"

	"golang.org/x/xerrors"
)

// CSVRenderer writes every sample of a figure as one long-format row
// "panel,series,x,y" after a header row.
type CSVRenderer struct{}

var _ Renderer = CSVRenderer{}

type record struct {
	panel, series string
	x, y          float64
}

func (r record) Record() []string {
	return []string{
		r.panel,
		r.series,
		strconv.FormatFloat(r.x, 'g', -1, 64),
		strconv.FormatFloat(r.y, 'g', -1, 64),
	}
}

// Render implements Renderer.
func (CSVRenderer) Render(w io.Writer, f *Figure) (err error) {
	if err := f.Validate(); err != nil {
		return err
	}

	defer func() {
		if rec, _ := recover().(error); rec != nil {
			err = xerrors.Errorf("csv: recovered: %w", rec)
		}
	}()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"panel", "series", "x", "y"}); err != nil {
		return xerrors.Errorf("csv: header: %w", err)
	}
	for _, p := range f.Panels {
		for _, s := range p.Series {
			for i := range s.X {
				rec := record{panel: p.Title, series: s.Label, x: s.X[i], y: s.Y[i]}
				if err := cw.Write(rec.Record()); err != nil {
					return xerrors.Errorf("csv: row: %w", err)
				}
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return xerrors.Errorf("csv: flush: %w", err)
	}
	return nil
}
