package electionmaps

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LayerType is the geometry style of a layer.
type LayerType string

const (
	FillLayer LayerType = "fill"
	LineLayer LayerType = "line"
)

// Layer is a styled layer drawn from a source.
type Layer struct {
	ID     string
	Type   LayerType
	Source string

	// Paint colors fill layers.
	Paint *Paint

	LineColor Color
	LineWidth float64

	// Filtered layers draw only the precinct named by the last SetFilter
	// call, and nothing until then.
	Filtered bool
}

// PointerEventType is a pointer interaction on a map.
type PointerEventType int

const (
	MouseMove PointerEventType = iota + 1
	MouseLeave
	MouseClick
)

// PointerEvent is a pointer interaction. Properties are those of the top
// feature under the pointer, if any.
type PointerEvent struct {
	Point      orb.Point
	Properties geojson.Properties
	HasFeature bool
}

// PointerHandler handles a pointer event.
type PointerHandler func(PointerEvent)

// MapView is a map display. Handlers are registered under a key; a second
// On with the same event, layer and key replaces the first, and Off removes
// it. An empty layer registers a map-wide handler.
type MapView interface {
	Camera

	HasLayer(id string) bool
	AddLayer(l Layer) error
	RemoveLayer(id string)
	SetSource(id string, fc *geojson.FeatureCollection)
	// SetFilter restricts a filtered layer to one precinct; "" shows none.
	SetFilter(layerID, precinct string)
	SetCursor(cursor string)

	On(ev PointerEventType, layerID, key string, h PointerHandler)
	Off(ev PointerEventType, layerID, key string)

	SetLegend(html string)
	SetTitle(title string)
}

// InfoPanel is the element that describes the selected precinct.
type InfoPanel interface {
	SetHTML(html string)
	Show()
	Hide()
}

// Notifier is told when the page content may have changed size.
type Notifier interface {
	Trigger()
}
