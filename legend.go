package electionmaps

import (
	"bytes"
	"fmt"
	"html/template"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var legendTemplate = template.Must(template.New("legend").Parse(`<div class="legend-title">{{.Title}}</div>
<div class="legend-row">
{{- range .Swatches}}<span class="legend-swatch" style="display:inline-block;background:{{.}}"></span>{{end -}}
</div>
<div class="legend-ends" style="display:flex;justify-content:space-between;margin-top:4px;width:100%;"><span>{{.Left}}</span><span>{{.Right}}</span></div>`))

// rgbaCSS returns c as a CSS rgba() value with the given alpha.
func rgbaCSS(c Color, alpha float64) (template.CSS, error) {
	rgb, err := c.RGBA()
	if err != nil {
		return "", err
	}
	return template.CSS(fmt.Sprintf("rgba(%d, %d, %d, %g)", rgb.R, rgb.G, rgb.B, alpha)), nil
}

// LegendHTML renders m's legend as a row of translucent swatches between
// two end labels. The swatches use the fill opacity of the map.
func LegendHTML(m *Mode) (string, error) {
	data := struct {
		Legend
		Swatches []template.CSS
	}{Legend: m.Legend}
	for _, c := range m.Paint.Colors() {
		css, err := rgbaCSS(c, m.Paint.FillOpacity())
		if err != nil {
			return "", err
		}
		data.Swatches = append(data.Swatches, css)
	}
	var b bytes.Buffer
	if err := legendTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("electionmaps: rendering legend: %w", err)
	}
	return b.String(), nil
}

// swatchMap is a palette.ColorMap that splits [min, max] into equal
// bands, one per palette color.
type swatchMap struct {
	colors   []color.Color
	min, max float64
	alpha    float64
}

func newSwatchMap(p *Paint) (*swatchMap, error) {
	cs := p.Colors()
	if len(cs) == 0 {
		return nil, fmt.Errorf("electionmaps: paint on %q has no colors", p.Property)
	}
	m := &swatchMap{min: 0, max: 100, alpha: p.FillOpacity()}
	for _, c := range cs {
		rgb, err := c.RGBA()
		if err != nil {
			return nil, err
		}
		m.colors = append(m.colors, rgb)
	}
	return m, nil
}

func (m *swatchMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	i := int((v - m.min) / (m.max - m.min) * float64(len(m.colors)))
	if i >= len(m.colors) {
		i = len(m.colors) - 1
	}
	c := m.colors[i].(color.NRGBA)
	c.A = uint8(math.Round(m.alpha * 255))
	return c, nil
}

func (m *swatchMap) Max() float64          { return m.max }
func (m *swatchMap) Min() float64          { return m.min }
func (m *swatchMap) SetMax(v float64)      { m.max = v }
func (m *swatchMap) SetMin(v float64)      { m.min = v }
func (m *swatchMap) Alpha() float64        { return m.alpha }
func (m *swatchMap) SetAlpha(a float64)    { m.alpha = a }
func (m *swatchMap) Colors() []color.Color { return m.colors }

func (m *swatchMap) Palette(n int) palette.Palette { return m }

// LegendPNG renders m's palette as a color bar image.
func LegendPNG(m *Mode) ([]byte, error) {
	cm, err := newSwatchMap(&m.Paint)
	if err != nil {
		return nil, err
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = m.Legend.Title
	p.Add(&plotter.ColorBar{ColorMap: cm, Colors: len(cm.colors) * 20})
	p.HideY()
	p.X.Padding = 0
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: cm.min, Label: m.Legend.Left},
		{Value: cm.max, Label: m.Legend.Right},
	})

	img := vgimg.New(300, 60)
	dc := draw.New(img)
	p.Draw(dc)
	b := new(bytes.Buffer)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(b); err != nil {
		return nil, fmt.Errorf("electionmaps: encoding legend: %w", err)
	}
	return b.Bytes(), nil
}
