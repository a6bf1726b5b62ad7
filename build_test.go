package electionmaps

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestBuild(t *testing.T) {
	src, err := ioutil.TempDir("", "electionmaps-src")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(src)
	out, err := ioutil.TempDir("", "electionmaps-out")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(out)

	cfg := DefaultConfig()
	for _, name := range []string{"propA.geojson", "propK.geojson", "d4.geojson"} {
		if err := ioutil.WriteFile(filepath.Join(src, name), []byte(twoPrecincts), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// An empty dataset is a warning, not a failure.
	if err := ioutil.WriteFile(filepath.Join(src, "turnout.geojson"), []byte(`{"type":"FeatureCollection","features":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(filepath.Join(src, MeasuresFile), []byte(measuresCSV), 0644); err != nil {
		t.Fatal(err)
	}

	log, hook := test.NewNullLogger()
	b := &Builder{Config: cfg, Src: src, Out: out, Tolerance: 0.01, Compress: true, Log: log}
	if err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{
		"propA.geojson", "propA.geojson.br", "propA.geojson.gz",
		"turnout.geojson", "maps.yaml", "maps.yaml.gz",
		"legends/propA.png", "legends/d4_winner.png",
		"bar-chart/A.png", "bar-chart/K.png",
	} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	cfg2, err := LoadConfig(filepath.Join(out, "maps.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg2.Pages) != len(cfg.Pages) {
		t.Errorf("%d != %d pages", len(cfg2.Pages), len(cfg.Pages))
	}

	warned := false
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["file"] == "turnout.geojson" {
			warned = true
		}
	}
	if !warned {
		t.Error("empty dataset was not reported")
	}
}

func TestBuildMissingData(t *testing.T) {
	out, err := ioutil.TempDir("", "electionmaps-out")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(out)
	log, _ := test.NewNullLogger()
	b := &Builder{Config: DefaultConfig(), Src: filepath.Join(out, "nowhere"), Out: out, Log: log}
	if err := b.Build(context.Background()); err == nil {
		t.Error("missing input should fail")
	}
}

func TestSimplify(t *testing.T) {
	line := orb.Ring{{0, 0}, {0.5, 0.0001}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Polygon{line}))
	fc.Append(geojson.NewFeature(orb.Point{3, 3}))

	Simplify(fc, 0)
	if n := len(fc.Features[0].Geometry.(orb.Polygon)[0]); n != 6 {
		t.Errorf("zero tolerance changed the ring: %d points", n)
	}
	Simplify(fc, 0.01)
	if n := len(fc.Features[0].Geometry.(orb.Polygon)[0]); n != 5 {
		t.Errorf("%d != 5 points", n)
	}
}
