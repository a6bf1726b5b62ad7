package electionmaps

import (
	"errors"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus/hooks/test"
)

func testData() map[string]*geojson.FeatureCollection {
	return map[string]*geojson.FeatureCollection{
		"propA.geojson": precincts(
			geojson.Properties{"precinct": "1101", "yes_perc": 62.3, "yes_perc_bin": "60-65%"},
			geojson.Properties{"precinct": "1102", "yes_perc": 41.0, "yes_perc_bin": "40-45%"},
		),
		"propK.geojson": precincts(
			geojson.Properties{"precinct": "1101", "yes_perc": 55.5, "yes_perc_bin": "55-60%"},
			geojson.Properties{"precinct": "1102", "yes_perc": 48.2, "yes_perc_bin": "45-50%"},
		),
		"d4.geojson": precincts(
			geojson.Properties{"precinct": "1102", "joel_engardio_p": 52.5, "gordon_mar_p": 47.5},
		),
	}
}

type testPage struct {
	c      *Controller
	views  []*fakeView
	panels []*fakePanel
	height *countNotifier
}

func newTestPage(t *testing.T, name string) *testPage {
	cfg := DefaultConfig()
	page, err := cfg.Page(name)
	if err != nil {
		t.Fatal(err)
	}
	tp := &testPage{height: &countNotifier{}}
	pvs := make([]PageView, len(page.Maps))
	for i := range page.Maps {
		v, p := newFakeView(), &fakePanel{}
		tp.views = append(tp.views, v)
		tp.panels = append(tp.panels, p)
		pvs[i] = PageView{Map: v, Panel: p}
	}
	tp.c, err = NewController(cfg, name, pvs)
	if err != nil {
		t.Fatal(err)
	}
	tp.c.Log, _ = test.NewNullLogger()
	tp.c.Height = tp.height
	return tp
}

func (tp *testPage) install(t *testing.T) {
	if err := tp.c.Install(testData()); err != nil {
		t.Fatal(err)
	}
}

func TestControllerClickAndBackground(t *testing.T) {
	tp := newTestPage(t, "propA")
	tp.install(t)
	v, p := tp.views[0], tp.panels[0]

	v.click("map", orb.Point{0.5, 0.5})
	if !p.visible {
		t.Fatal("panel should be visible")
	}
	if !strings.Contains(p.html, "Yes: 62.3% • No: 37.7%") {
		t.Errorf("unexpected panel %q", p.html)
	}
	if v.filters["map-selected"] != "1101" {
		t.Errorf("%v != 1101", v.filters["map-selected"])
	}
	before := tp.height.n

	v.click("map", orb.Point{10, 10})
	if p.visible || p.html != "" {
		t.Errorf("panel should be hidden and empty: %v %q", p.visible, p.html)
	}
	if v.filters["map-selected"] != "" {
		t.Errorf("selection outline %q not cleared", v.filters["map-selected"])
	}
	if tp.height.n <= before {
		t.Error("no height report after clearing the selection")
	}

	v.click("map", orb.Point{2.5, 0.5})
	if !strings.Contains(p.html, "Yes: 41.0% • No: 59.0%") {
		t.Errorf("unexpected panel %q", p.html)
	}
	if tp.c.State().Selected != "1102" {
		t.Errorf("%v != 1102", tp.c.State().Selected)
	}
}

func TestControllerHoverKeepsSelection(t *testing.T) {
	tp := newTestPage(t, "propA")
	tp.install(t)
	v := tp.views[0]
	fc := v.sources["map-src"]

	v.click("map", orb.Point{0.5, 0.5})
	v.hover("map", fc.Features[1])
	if v.filters["map-hover"] != "1102" {
		t.Errorf("%v != 1102", v.filters["map-hover"])
	}
	if v.cursor != "pointer" {
		t.Errorf("%q != pointer", v.cursor)
	}
	v.leave("map")
	if v.filters["map-hover"] != "" || v.cursor != "" {
		t.Errorf("hover not cleared: %q %q", v.filters["map-hover"], v.cursor)
	}
	if v.filters["map-selected"] != "1101" || !tp.panels[0].visible {
		t.Error("hover changed the selection")
	}
	want := State{Selected: "1101"}
	if tp.c.State() != want {
		t.Errorf("%+v != %+v", tp.c.State(), want)
	}
}

func TestControllerEscape(t *testing.T) {
	tp := newTestPage(t, "propA")
	tp.install(t)
	tp.views[0].click("map", orb.Point{0.5, 0.5})
	tp.c.Escape()
	if !tp.c.State().Idle() || tp.panels[0].visible {
		t.Errorf("escape left %+v", tp.c.State())
	}
}

func TestControllerComparison(t *testing.T) {
	tp := newTestPage(t, "comparison")
	tp.install(t)
	v1, v2 := tp.views[0], tp.views[1]

	if v2.title != "Nov. 2024 Proposition K" {
		t.Errorf("unexpected title %q", v2.title)
	}
	v1.click("map1", orb.Point{0.5, 0.5})
	if !strings.Contains(tp.panels[0].html, "Yes: 62.3%") {
		t.Errorf("unexpected map1 panel %q", tp.panels[0].html)
	}
	if !strings.Contains(tp.panels[1].html, "Yes: 55.5%") {
		t.Errorf("unexpected map2 panel %q", tp.panels[1].html)
	}
	for i, v := range tp.views {
		if v.filters[NewLayerSet(tp.c.Page().Maps[i].ID).Selected] != "1101" {
			t.Errorf("map %d outline not set", i)
		}
	}

	// 1101 is not in the district data.
	if err := tp.c.SelectMode(1, "d4_2022"); err != nil {
		t.Fatal(err)
	}
	if tp.c.State().Selected != "" {
		t.Errorf("selection %q kept", tp.c.State().Selected)
	}
	if tp.panels[0].visible || tp.panels[1].visible {
		t.Error("panels should be hidden")
	}
	if v2.title != "Nov. 2022 supervisor election" {
		t.Errorf("unexpected title %q", v2.title)
	}

	v2.click("map2", orb.Point{0.5, 0.5})
	if !strings.Contains(tp.panels[1].html, "Engardio: 52.5% • Mar: 47.5%") {
		t.Errorf("unexpected map2 panel %q", tp.panels[1].html)
	}
	if !strings.Contains(tp.panels[0].html, "Yes: 41.0%") {
		t.Errorf("unexpected map1 panel %q", tp.panels[0].html)
	}
	if err := tp.c.SelectMode(1, "propK"); err != nil {
		t.Fatal(err)
	}
	if tp.c.State().Selected != "1102" {
		t.Errorf("%q != 1102", tp.c.State().Selected)
	}
	if !strings.Contains(tp.panels[1].html, "Yes: 48.2%") || !tp.panels[1].visible {
		t.Errorf("unexpected map2 panel %q", tp.panels[1].html)
	}

	if err := tp.c.SelectMode(1, "nope"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
	if err := tp.c.SelectMode(5, "propK"); err == nil {
		t.Error("expected an error for an unknown map")
	}
}

func TestControllerLinkedCameras(t *testing.T) {
	tp := newTestPage(t, "comparison")
	tp.install(t)
	v1, v2 := tp.views[0], tp.views[1]

	s := ViewState{Center: orb.Point{-122.45, 37.76}, Zoom: 13, Bearing: 10}
	v1.move(s)
	if v2.vs != s {
		t.Errorf("%+v != %+v", v2.vs, s)
	}
	s2 := ViewState{Center: orb.Point{-122.5, 37.7}, Zoom: 11}
	v2.move(s2)
	if v1.vs != s2 {
		t.Errorf("%+v != %+v", v1.vs, s2)
	}
	aToB, bToA := tp.c.Link().Writes()
	if aToB != 1 || bToA != 1 {
		t.Errorf("writes %d, %d != 1, 1", aToB, bToA)
	}

	// Installing again must not add a second link.
	tp.install(t)
	v1.move(s)
	if aToB, _ := tp.c.Link().Writes(); aToB != 2 {
		t.Errorf("%d != 2", aToB)
	}
}

func TestControllerOriginFallback(t *testing.T) {
	tp := newTestPage(t, "comparison")
	tp.install(t)

	tp.c.origin = 0
	tp.c.originProps = geojson.Properties{"precinct": "9999", "yes_perc": 70.0}
	tp.c.Dispatch(Event{Type: EventClick, ID: "9999"})

	if !strings.Contains(tp.panels[0].html, "Yes: 70.0% • No: 30.0%") {
		t.Errorf("unexpected origin panel %q", tp.panels[0].html)
	}
	if !strings.Contains(tp.panels[1].html, "No data for this precinct") {
		t.Errorf("unexpected panel %q", tp.panels[1].html)
	}

	tp.c.Escape()
	if tp.c.origin != -1 || tp.c.originProps != nil {
		t.Error("origin kept after clearing the selection")
	}
}

func TestControllerShowError(t *testing.T) {
	tp := newTestPage(t, "comparison")
	tp.c.ShowError(errors.New("propA.geojson: 404 Not Found"))
	if tp.panels[0].visible {
		t.Error("error shown in the first panel")
	}
	if !tp.panels[1].visible || !strings.Contains(tp.panels[1].html, "Error loading maps: propA.geojson: 404 Not Found") {
		t.Errorf("unexpected panel %v %q", tp.panels[1].visible, tp.panels[1].html)
	}
	if tp.height.n != 1 {
		t.Errorf("%d != 1", tp.height.n)
	}
}

func TestControllerInstallMissingData(t *testing.T) {
	tp := newTestPage(t, "comparison")
	data := testData()
	delete(data, "propK.geojson")
	if err := tp.c.Install(data); err == nil {
		t.Error("expected an error")
	}
}

func TestControllerDataFiles(t *testing.T) {
	tp := newTestPage(t, "comparison")
	want := []string{"propA.geojson", "propK.geojson", "d4.geojson"}
	got := tp.c.DataFiles()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("%v != %v", got, want)
	}
}

func TestControllerViewport(t *testing.T) {
	tp := newTestPage(t, "comparison-2022")
	v := tp.views[0]
	page := tp.c.Page()

	tp.c.SetViewport(1024)
	tp.c.SetViewport(800)
	if v.jumps != 0 {
		t.Errorf("%d != 0", v.jumps)
	}
	v.vs.Bearing = 20
	tp.c.SetViewport(375)
	if v.jumps != 1 {
		t.Fatalf("%d != 1", v.jumps)
	}
	want := page.Mobile
	want.Bearing = 20
	if v.vs != want {
		t.Errorf("%+v != %+v", v.vs, want)
	}
	tp.c.SetViewport(320)
	if v.jumps != 1 {
		t.Errorf("%d != 1", v.jumps)
	}
	tp.c.SetViewport(1280)
	if v.vs.Zoom != page.Desktop.Zoom {
		t.Errorf("%v != %v", v.vs.Zoom, page.Desktop.Zoom)
	}
}

func TestNewControllerViewCount(t *testing.T) {
	if _, err := NewController(DefaultConfig(), "comparison", []PageView{{Map: newFakeView()}}); err == nil {
		t.Error("expected an error")
	}
	if _, err := NewController(DefaultConfig(), "nope", nil); err == nil {
		t.Error("expected an error")
	}
}
