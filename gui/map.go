//go:build js
// +build js

package gui

import (
	"fmt"
	"syscall/js"

	"github.com/ctessum/go-leaflet"
	"github.com/mlnow/electionmaps"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature properties added to the parsed GeoJSON so callbacks can find
// the Go feature.
const (
	propIndex = "__idx"
	propID    = "__id"
)

var leafletEvents = map[electionmaps.PointerEventType]string{
	electionmaps.MouseMove:  "mousemove",
	electionmaps.MouseLeave: "mouseout",
	electionmaps.MouseClick: "click",
}

type source struct {
	fc   *geojson.FeatureCollection
	data js.Value
}

type layer struct {
	def    electionmaps.Layer
	gl     js.Value
	colors []string
	filter string
	funcs  []js.Func
}

func (l *layer) release() {
	l.gl.Call("remove")
	for _, f := range l.funcs {
		f.Release()
	}
}

type handlerID struct {
	ev         electionmaps.PointerEventType
	layer, key string
}

type handler struct {
	target js.Value
	fn     js.Func
}

// MapView is a Leaflet map. It implements electionmaps.MapView.
type MapView struct {
	div    js.Value
	m      *leaflet.Map
	legend js.Value
	title  js.Value
	tiles  js.Value

	sources  map[string]*source
	layers   map[string]*layer
	handlers map[handlerID]handler
	moves    []js.Func
}

// NewMapView creates a map in div with the basemap tiles at style. legend
// and title may be null.
func NewMapView(div, legend, title js.Value, style string, view electionmaps.ViewState) *MapView {
	v := &MapView{
		div:      div,
		legend:   legend,
		title:    title,
		sources:  make(map[string]*source),
		layers:   make(map[string]*layer),
		handlers: make(map[handlerID]handler),
	}
	v.m = leaflet.NewMap(div, map[string]interface{}{
		"zoomSnap":        0,
		"scrollWheelZoom": false,
	})
	v.JumpTo(view)

	options := make(map[string]interface{})
	options["attribution"] = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`
	v.tiles = leaflet.L.Call("tileLayer", style, options)
	v.tiles.Call("addTo", v.m.Value)
	return v
}

// OnTilesLoaded calls f each time the basemap finishes loading the tiles
// in view.
func (v *MapView) OnTilesLoaded(f func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f()
		return nil
	})
	v.moves = append(v.moves, cb)
	v.tiles.Call("on", "load", cb)
}

// ViewState implements electionmaps.Camera.
func (v *MapView) ViewState() electionmaps.ViewState {
	c := v.m.Value.Call("getCenter")
	return electionmaps.ViewState{
		Center: orb.Point{c.Get("lng").Float(), c.Get("lat").Float()},
		Zoom:   v.m.Value.Call("getZoom").Float(),
	}
}

// JumpTo implements electionmaps.Camera. Leaflet has no rotation, so
// bearing and pitch are ignored.
func (v *MapView) JumpTo(s electionmaps.ViewState) {
	ll := leaflet.NewLatLng(s.Center[1], s.Center[0])
	v.m.Value.Call("setView", ll.Value, s.Zoom, map[string]interface{}{"animate": false})
}

// OnMove implements electionmaps.Camera.
func (v *MapView) OnMove(f func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f()
		return nil
	})
	v.moves = append(v.moves, cb)
	v.m.Value.Call("on", "move", cb)
}

// HasLayer implements electionmaps.MapView.
func (v *MapView) HasLayer(id string) bool {
	_, ok := v.layers[id]
	return ok
}

// SetSource implements electionmaps.MapView. Layers drawn from the source
// are redrawn.
func (v *MapView) SetSource(id string, fc *geojson.FeatureCollection) {
	b, err := fc.MarshalJSON()
	if err != nil {
		panic(err)
	}
	data := js.Global().Get("JSON").Call("parse", string(b))
	features := data.Get("features")
	for i := 0; i < features.Length(); i++ {
		props := features.Index(i).Get("properties")
		if props.IsNull() || props.IsUndefined() {
			props = js.Global().Get("Object").New()
			features.Index(i).Set("properties", props)
		}
		props.Set(propIndex, i)
		pid, _ := electionmaps.ResolveIdentifier(fc.Features[i].Properties)
		props.Set(propID, pid)
	}
	v.sources[id] = &source{fc: fc, data: data}
	for _, l := range v.layers {
		if l.def.Source == id {
			v.redraw(l)
		}
	}
}

// AddLayer implements electionmaps.MapView.
func (v *MapView) AddLayer(def electionmaps.Layer) error {
	if v.HasLayer(def.ID) {
		return fmt.Errorf("gui: layer %s already exists", def.ID)
	}
	src, ok := v.sources[def.Source]
	if !ok {
		return fmt.Errorf("gui: layer %s: no source %s", def.ID, def.Source)
	}
	l := &layer{def: def}
	if def.Type == electionmaps.FillLayer && def.Paint != nil {
		l.colors = make([]string, len(src.fc.Features))
		for i, f := range src.fc.Features {
			l.colors[i] = string(def.Paint.ColorFor(f.Properties))
		}
	}
	style := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return l.style(args[0])
	})
	l.funcs = append(l.funcs, style)
	options := map[string]interface{}{
		"style":       style,
		"interactive": def.Type == electionmaps.FillLayer,
	}
	if def.Filtered {
		filter := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			return l.filter != "" && args[0].Get("properties").Get(propID).String() == l.filter
		})
		l.funcs = append(l.funcs, filter)
		options["filter"] = filter
	}
	l.gl = leaflet.L.Call("geoJSON", src.data, options)
	l.gl.Call("addTo", v.m.Value)
	v.layers[def.ID] = l
	return nil
}

func (l *layer) style(f js.Value) interface{} {
	if l.def.Type == electionmaps.FillLayer {
		c := string(electionmaps.NeutralColor)
		if l.def.Paint != nil {
			c = string(l.def.Paint.DefaultColor())
		}
		if i := f.Get("properties").Get(propIndex).Int(); i < len(l.colors) {
			c = l.colors[i]
		}
		o := 0.6
		if l.def.Paint != nil {
			o = l.def.Paint.FillOpacity()
		}
		return map[string]interface{}{
			"fillColor":   c,
			"fillOpacity": o,
			"stroke":      false,
		}
	}
	return map[string]interface{}{
		"color":   string(l.def.LineColor),
		"weight":  l.def.LineWidth,
		"opacity": 1,
		"fill":    false,
	}
}

func (v *MapView) redraw(l *layer) {
	l.gl.Call("clearLayers")
	if src, ok := v.sources[l.def.Source]; ok {
		l.gl.Call("addData", src.data)
	}
}

// RemoveLayer implements electionmaps.MapView.
func (v *MapView) RemoveLayer(id string) {
	l, ok := v.layers[id]
	if !ok {
		return
	}
	l.release()
	delete(v.layers, id)
}

// SetFilter implements electionmaps.MapView.
func (v *MapView) SetFilter(layerID, precinct string) {
	l, ok := v.layers[layerID]
	if !ok || l.filter == precinct {
		return
	}
	l.filter = precinct
	v.redraw(l)
	if precinct != "" {
		l.gl.Call("bringToFront")
	}
}

// SetCursor implements electionmaps.MapView.
func (v *MapView) SetCursor(cursor string) {
	v.div.Get("style").Set("cursor", cursor)
}

// On implements electionmaps.MapView.
func (v *MapView) On(ev electionmaps.PointerEventType, layerID, key string, h electionmaps.PointerHandler) {
	v.Off(ev, layerID, key)
	target := v.m.Value
	if layerID != "" {
		l, ok := v.layers[layerID]
		if !ok {
			return
		}
		target = l.gl
	}
	src := v.layerSource(layerID)
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		h(v.pointerEvent(args[0], src, layerID != ""))
		return nil
	})
	target.Call("on", leafletEvents[ev], fn)
	v.handlers[handlerID{ev, layerID, key}] = handler{target: target, fn: fn}
}

func (v *MapView) layerSource(layerID string) *source {
	if l, ok := v.layers[layerID]; ok {
		return v.sources[l.def.Source]
	}
	return nil
}

func (v *MapView) pointerEvent(e js.Value, src *source, onLayer bool) electionmaps.PointerEvent {
	var pe electionmaps.PointerEvent
	if ll := e.Get("latlng"); !ll.IsUndefined() && !ll.IsNull() {
		pe.Point = orb.Point{ll.Get("lng").Float(), ll.Get("lat").Float()}
	}
	if !onLayer || src == nil {
		return pe
	}
	f := e.Get("layer").Get("feature")
	if f.IsUndefined() || f.IsNull() {
		return pe
	}
	i := f.Get("properties").Get(propIndex)
	if i.IsUndefined() || i.Int() >= len(src.fc.Features) {
		return pe
	}
	pe.Properties = src.fc.Features[i.Int()].Properties
	pe.HasFeature = true
	return pe
}

// Off implements electionmaps.MapView.
func (v *MapView) Off(ev electionmaps.PointerEventType, layerID, key string) {
	id := handlerID{ev, layerID, key}
	h, ok := v.handlers[id]
	if !ok {
		return
	}
	h.target.Call("off", leafletEvents[ev], h.fn)
	h.fn.Release()
	delete(v.handlers, id)
}

// SetLegend implements electionmaps.MapView.
func (v *MapView) SetLegend(html string) {
	if v.legend.Truthy() {
		v.legend.Set("innerHTML", html)
	}
}

// SetTitle implements electionmaps.MapView.
func (v *MapView) SetTitle(title string) {
	if v.title.Truthy() {
		v.title.Set("textContent", title)
	}
}
