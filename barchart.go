package electionmaps

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bar colors of the proposition chart.
const (
	YesBarColor Color = "#8ad6ce"
	NoBarColor  Color = "#f36e57"
)

// Measure is the citywide result of one proposition.
type Measure struct {
	Proposition string
	Yes, No     float64
	// Threshold is the yes share needed to pass.
	Threshold float64
}

// Passed reports whether the yes share reached the threshold.
func (m Measure) Passed() bool { return m.Yes >= m.Threshold }

// ReadMeasures reads a "proposition,yes_p,no_p" CSV with a header row.
// Thresholds come from cfg; a nil cfg uses 50 for every proposition.
func ReadMeasures(r io.Reader, cfg *Config) ([]Measure, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("electionmaps: reading measures: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	col := make(map[string]int)
	for i, h := range rows[0] {
		col[strings.TrimSpace(h)] = i
	}
	for _, h := range []string{"proposition", "yes_p", "no_p"} {
		if _, ok := col[h]; !ok {
			return nil, fmt.Errorf("electionmaps: reading measures: missing column %q", h)
		}
	}
	var o []Measure
	for n, row := range rows[1:] {
		m := Measure{Proposition: strings.TrimSpace(row[col["proposition"]])}
		if m.Yes, err = strconv.ParseFloat(strings.TrimSpace(row[col["yes_p"]]), 64); err != nil {
			return nil, fmt.Errorf("electionmaps: reading measures: row %d: %w", n+2, err)
		}
		if m.No, err = strconv.ParseFloat(strings.TrimSpace(row[col["no_p"]]), 64); err != nil {
			return nil, fmt.Errorf("electionmaps: reading measures: row %d: %w", n+2, err)
		}
		m.Threshold = 50
		if cfg != nil {
			m.Threshold = cfg.Threshold(m.Proposition)
		}
		o = append(o, m)
	}
	return o, nil
}

// BarChartPNG draws the yes and no shares of m as two horizontal bars on
// a fixed 0 to 100 scale with a vertical line at the threshold.
func BarChartPNG(m Measure) ([]byte, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = "Proposition " + m.Proposition
	p.X.Min, p.X.Max = 0, 100
	p.HideX()

	for i, b := range []struct {
		v float64
		c Color
	}{{m.No, NoBarColor}, {m.Yes, YesBarColor}} {
		bc, err := plotter.NewBarChart(plotter.Values{b.v}, vg.Points(25))
		if err != nil {
			return nil, err
		}
		bc.Horizontal = true
		bc.XMin = float64(i)
		bc.LineStyle.Width = 0
		if bc.Color, err = b.c.RGBA(); err != nil {
			return nil, err
		}
		p.Add(bc)
	}
	p.NominalY("No", "Yes")

	line, err := plotter.NewLine(plotter.XYs{
		{X: m.Threshold, Y: -0.5},
		{X: m.Threshold, Y: 1.5},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{
			{X: m.No + 2, Y: 0},
			{X: m.Yes + 2, Y: 1},
		},
		Labels: []string{
			strconv.FormatFloat(m.No, 'f', 1, 64),
			strconv.FormatFloat(m.Yes, 'f', 1, 64),
		},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	w, err := p.WriterTo(vg.Points(300), vg.Points(90), "png")
	if err != nil {
		return nil, err
	}
	b := new(bytes.Buffer)
	if _, err := w.WriteTo(b); err != nil {
		return nil, fmt.Errorf("electionmaps: encoding bar chart: %w", err)
	}
	return b.Bytes(), nil
}
