package electionmaps

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

// LayerSet names the layers derived from one map's source.
type LayerSet struct {
	Source   string
	Fill     string
	Outline  string
	Hover    string
	Selected string
}

// NewLayerSet returns the layer names for the map with the given id.
func NewLayerSet(mapID string) LayerSet {
	return LayerSet{
		Source:   mapID + "-src",
		Fill:     mapID + "-fill",
		Outline:  mapID + "-outline",
		Hover:    mapID + "-hover",
		Selected: mapID + "-selected",
	}
}

// IDs returns the layer ids in drawing order.
func (ls LayerSet) IDs() []string {
	return []string{ls.Fill, ls.Outline, ls.Hover, ls.Selected}
}

func (ls LayerSet) layers(p *Paint) []Layer {
	return []Layer{
		{ID: ls.Fill, Type: FillLayer, Source: ls.Source, Paint: p},
		{ID: ls.Outline, Type: LineLayer, Source: ls.Source, LineColor: "#fff", LineWidth: 0.5},
		{ID: ls.Hover, Type: LineLayer, Source: ls.Source, LineColor: "#fff", LineWidth: 2.5, Filtered: true},
		{ID: ls.Selected, Type: LineLayer, Source: ls.Source, LineColor: "#fff", LineWidth: 3, Filtered: true},
	}
}

// Handlers are the pointer handlers attached to a map's fill layer.
type Handlers struct {
	Move  PointerHandler
	Leave PointerHandler
	Click PointerHandler
}

// handlerKey is the registration key of the switcher's fill handlers.
const handlerKey = "precincts"

// Binding is a map view with its layers and handlers.
type Binding struct {
	View     MapView
	Layers   LayerSet
	Handlers Handlers
}

// Dataset is the data currently shown by a map.
type Dataset struct {
	Mode  *Mode
	Index *Index
	Hits  *HitIndex
}

// Switcher replaces the data shown by a map.
type Switcher struct {
	Log logrus.FieldLogger
}

func (s *Switcher) log() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

// Switch shows fc in b's view using mode. The derived layers are removed
// and added again with the new paint, and the fill handlers are
// re-registered, so Switch may be called any number of times.
func (s *Switcher) Switch(b *Binding, fc *geojson.FeatureCollection, mode *Mode) (*Dataset, error) {
	v := b.View
	for _, id := range b.Layers.IDs() {
		if v.HasLayer(id) {
			v.RemoveLayer(id)
		}
	}
	v.SetSource(b.Layers.Source, fc)
	for _, l := range b.Layers.layers(&mode.Paint) {
		if err := v.AddLayer(l); err != nil {
			return nil, fmt.Errorf("electionmaps: adding layer %s: %w", l.ID, err)
		}
	}

	schema := mode.Schema()
	idx, err := BuildIndex(fc, schema)
	if errors.Is(err, ErrNoFeatures) {
		s.log().WithField("mode", mode.Name).Warn("dataset has no features")
	}
	ds := &Dataset{Mode: mode, Index: idx, Hits: NewHitIndex(fc, schema)}

	for _, h := range []struct {
		ev PointerEventType
		h  PointerHandler
	}{
		{MouseMove, b.Handlers.Move},
		{MouseLeave, b.Handlers.Leave},
		{MouseClick, b.Handlers.Click},
	} {
		v.Off(h.ev, b.Layers.Fill, handlerKey)
		if h.h != nil {
			v.On(h.ev, b.Layers.Fill, handlerKey, h.h)
		}
	}

	legend, err := LegendHTML(mode)
	if err != nil {
		return nil, err
	}
	v.SetLegend(legend)
	v.SetTitle(mode.Title)

	s.log().WithFields(logrus.Fields{
		"mode":      mode.Name,
		"precincts": idx.Len(),
	}).Debug("switched dataset")
	return ds, nil
}
