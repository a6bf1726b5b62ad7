package electionmaps

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// square returns a unit square precinct with its lower left corner at x.
func square(x float64, props geojson.Properties) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{{
		{x, 0}, {x + 1, 0}, {x + 1, 1}, {x, 1}, {x, 0},
	}})
	f.Properties = props
	return f
}

// precincts lays out one square per property bag along the x axis.
func precincts(props ...geojson.Properties) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, p := range props {
		fc.Append(square(float64(2*i), p))
	}
	return fc
}

type fakeKey struct {
	ev         PointerEventType
	layer, key string
}

type fakeView struct {
	vs    ViewState
	moves []func()
	jumps int

	layers   map[string]Layer
	sources  map[string]*geojson.FeatureCollection
	filters  map[string]string
	handlers map[fakeKey]PointerHandler
	cursor   string
	legend   string
	title    string
}

func newFakeView() *fakeView {
	return &fakeView{
		layers:   make(map[string]Layer),
		sources:  make(map[string]*geojson.FeatureCollection),
		filters:  make(map[string]string),
		handlers: make(map[fakeKey]PointerHandler),
	}
}

func (v *fakeView) ViewState() ViewState { return v.vs }

func (v *fakeView) JumpTo(s ViewState) {
	v.jumps++
	v.move(s)
}

func (v *fakeView) OnMove(f func()) { v.moves = append(v.moves, f) }

// move sets the position and fires the move handlers, like a user drag.
func (v *fakeView) move(s ViewState) {
	v.vs = s
	for _, f := range v.moves {
		f()
	}
}

func (v *fakeView) HasLayer(id string) bool {
	_, ok := v.layers[id]
	return ok
}

func (v *fakeView) AddLayer(l Layer) error {
	if v.HasLayer(l.ID) {
		return fmt.Errorf("layer %s exists", l.ID)
	}
	if _, ok := v.sources[l.Source]; !ok {
		return fmt.Errorf("no source %s", l.Source)
	}
	v.layers[l.ID] = l
	return nil
}

func (v *fakeView) RemoveLayer(id string) { delete(v.layers, id) }

func (v *fakeView) SetSource(id string, fc *geojson.FeatureCollection) { v.sources[id] = fc }

func (v *fakeView) SetFilter(layerID, precinct string) { v.filters[layerID] = precinct }

func (v *fakeView) SetCursor(c string) { v.cursor = c }

func (v *fakeView) On(ev PointerEventType, layerID, key string, h PointerHandler) {
	v.handlers[fakeKey{ev, layerID, key}] = h
}

func (v *fakeView) Off(ev PointerEventType, layerID, key string) {
	delete(v.handlers, fakeKey{ev, layerID, key})
}

func (v *fakeView) SetLegend(html string) { v.legend = html }

func (v *fakeView) SetTitle(title string) { v.title = title }

// fire sends e to the handler registered for ev on layer, if any.
func (v *fakeView) fire(ev PointerEventType, layer string, e PointerEvent) {
	for k, h := range v.handlers {
		if k.ev == ev && k.layer == layer {
			h(e)
		}
	}
}

// click imitates the map library: a click on a feature reaches the fill
// layer handlers first and then the map-wide ones without the feature.
func (v *fakeView) click(mapID string, pt orb.Point) {
	fc := v.sources[mapID+"-src"]
	for _, f := range fc.Features {
		if f.Geometry.Bound().Contains(pt) {
			v.fire(MouseClick, mapID+"-fill", PointerEvent{Point: pt, Properties: f.Properties, HasFeature: true})
			break
		}
	}
	v.fire(MouseClick, "", PointerEvent{Point: pt})
}

func (v *fakeView) hover(mapID string, f *geojson.Feature) {
	v.fire(MouseMove, mapID+"-fill", PointerEvent{Properties: f.Properties, HasFeature: true})
}

func (v *fakeView) leave(mapID string) {
	v.fire(MouseLeave, mapID+"-fill", PointerEvent{})
}

type fakePanel struct {
	html    string
	visible bool
}

func (p *fakePanel) SetHTML(html string) { p.html = html }
func (p *fakePanel) Show()               { p.visible = true }
func (p *fakePanel) Hide()               { p.visible = false }

type countNotifier struct{ n int }

func (c *countNotifier) Trigger() { c.n++ }
