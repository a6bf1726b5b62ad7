package electionmaps

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// HitIndex answers which precinct, if any, lies under a point. It stands in
// for the map library's rendered-feature query when deciding whether a
// click landed on the background.
type HitIndex struct {
	tree *rtree.Rtree
	n    int
}

type hitShape struct {
	id     string
	bounds *geom.Bounds
	geom   orb.Geometry
}

func (h *hitShape) Bounds() *geom.Bounds { return h.bounds }

func (h *hitShape) contains(pt orb.Point) bool {
	switch g := h.geom.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, pt)
	}
	return false
}

// NewHitIndex indexes the polygonal features of fc by identifier. Features
// without an identifier or a polygonal geometry are left out.
func NewHitIndex(fc *geojson.FeatureCollection, s Schema) *HitIndex {
	h := &HitIndex{tree: rtree.NewTree(25, 50)}
	if fc == nil {
		return h
	}
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			continue
		}
		id, ok := s.Identifier(f.Properties)
		if !ok {
			continue
		}
		b := f.Geometry.Bound()
		h.tree.Insert(&hitShape{
			id: id,
			bounds: &geom.Bounds{
				Min: geom.Point{X: b.Min[0], Y: b.Min[1]},
				Max: geom.Point{X: b.Max[0], Y: b.Max[1]},
			},
			geom: f.Geometry,
		})
		h.n++
	}
	return h
}

// Len returns the number of indexed shapes.
func (h *HitIndex) Len() int { return h.n }

// At returns the identifier of a precinct containing pt.
func (h *HitIndex) At(pt orb.Point) (string, bool) {
	if h == nil || h.n == 0 {
		return "", false
	}
	const eps = 1e-12
	bb := &geom.Bounds{
		Min: geom.Point{X: pt[0] - eps, Y: pt[1] - eps},
		Max: geom.Point{X: pt[0] + eps, Y: pt[1] + eps},
	}
	for _, s := range h.tree.SearchIntersect(bb) {
		shape := s.(*hitShape)
		if shape.contains(pt) {
			return shape.id, true
		}
	}
	return "", false
}
