package getstats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mlnow/electionmaps"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func feature(props geojson.Properties) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{-122.4, 37.7})
	f.Properties = props
	return f
}

func mode(t *testing.T, name string) *electionmaps.Mode {
	m, err := electionmaps.DefaultConfig().Mode(name)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSummarize(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(feature(geojson.Properties{"precinct": "1101", "turnout": 50.0, "registered_voters": 100.0, "votes_cast": 50.0, "yes_perc": 60.0}))
	fc.Append(feature(geojson.Properties{"precinct": "1102", "turnout": 80.0, "registered_voters": 300.0, "votes_cast": 240.0, "yes_perc": 40.0}))
	fc.Append(feature(geojson.Properties{"precinct": "1103"}))
	idx, err := electionmaps.BuildIndex(fc, electionmaps.DefaultSchema())
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(mode(t, "turnout"), idx)
	if s.Mode != "turnout" {
		t.Errorf("%v != turnout", s.Mode)
	}
	if s.Precincts != 3 {
		t.Errorf("precincts: %d != 3", s.Precincts)
	}
	if s.Registered != 400 {
		t.Errorf("registered: %v != 400", s.Registered)
	}
	if s.Cast != 290 {
		t.Errorf("cast: %v != 290", s.Cast)
	}
	if want := (50.0*100 + 80*300) / 400; math.Abs(s.Turnout-want) > 1e-9 {
		t.Errorf("turnout: %v != %v", s.Turnout, want)
	}
	if want := (60.0*50 + 40*240) / 290; math.Abs(s.YesShare-want) > 1e-9 {
		t.Errorf("yes share: %v != %v", s.YesShare, want)
	}
}

func TestSummarizeZeroTurnout(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(feature(geojson.Properties{"precinct": "1101", "turnout": 60.0, "registered_voters": 100.0}))
	fc.Append(feature(geojson.Properties{"precinct": "1102", "turnout": 0.0, "registered_voters": 300.0}))
	idx, err := electionmaps.BuildIndex(fc, electionmaps.DefaultSchema())
	if err != nil {
		t.Fatal(err)
	}

	// Zero means no results in the turnout mode.
	if s := Summarize(mode(t, "turnout"), idx); s.Turnout != 60 {
		t.Errorf("%v != 60", s.Turnout)
	}
	if s := Summarize(mode(t, "turnout"), idx); s.Registered != 400 {
		t.Errorf("%v != 400", s.Registered)
	}
	// Other modes count it.
	if s := Summarize(mode(t, "propA"), idx); s.Turnout != 15 {
		t.Errorf("%v != 15", s.Turnout)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	idx, _ := electionmaps.BuildIndex(geojson.NewFeatureCollection(), electionmaps.DefaultSchema())
	s := Summarize(mode(t, "propA"), idx)
	if s.Precincts != 0 || !math.IsNaN(s.Turnout) || !math.IsNaN(s.YesShare) {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestWriteCSV(t *testing.T) {
	b := new(bytes.Buffer)
	err := WriteCSV(b, []Summary{
		{Mode: "propA", Precincts: 2, Registered: 400, Cast: 290, Turnout: 72.5, YesShare: math.NaN()},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "mode,precincts,registered_voters,votes_cast,turnout,yes_share\npropA,2,400,290,72.5,\n"
	if have := b.String(); have != want {
		t.Errorf("%q != %q", have, want)
	}
	if !strings.HasPrefix(b.String(), strings.Join(Header, ",")) {
		t.Errorf("missing header")
	}
}
