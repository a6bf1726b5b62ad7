package electionmaps

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/mlnow/electionmaps/internal/compress"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MeasuresFile is the name of the proposition results table.
const MeasuresFile = "data.csv"

// Builder prepares a site directory from raw election data.
type Builder struct {
	Config *Config
	// Src holds the raw GeoJSON files named by the config and, optionally,
	// the measures table.
	Src string
	// Out receives the processed site data.
	Out string
	// Tolerance is the Douglas-Peucker tolerance in degrees. Zero keeps
	// geometry as is.
	Tolerance float64
	// Compress writes brotli and gzip variants of the outputs.
	Compress bool

	Log logrus.FieldLogger
}

func (b *Builder) log() logrus.FieldLogger {
	if b.Log == nil {
		return logrus.StandardLogger()
	}
	return b.Log
}

// Build writes the processed datasets, maps.yaml, one legend image per mode
// and, if the measures table exists, one bar chart per proposition.
func (b *Builder) Build(ctx context.Context) error {
	if err := b.Config.Validate(); err != nil {
		return err
	}
	for _, d := range []string{b.Out, filepath.Join(b.Out, "legends")} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for file, schema := range b.datasets() {
		file, schema := file, schema
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return b.dataset(file, schema)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	cfg, err := b.Config.Marshal()
	if err != nil {
		return err
	}
	if err := b.write("maps.yaml", cfg); err != nil {
		return err
	}
	for _, name := range b.Config.ModeNames() {
		m, _ := b.Config.Mode(name)
		img, err := LegendPNG(m)
		if err != nil {
			return fmt.Errorf("electionmaps: legend for %s: %w", name, err)
		}
		if err := b.write(filepath.Join("legends", name+".png"), img); err != nil {
			return err
		}
	}
	if err := b.barCharts(); err != nil {
		return err
	}

	if b.Compress {
		n, err := compress.Dir(b.Out)
		if err != nil {
			return fmt.Errorf("electionmaps: compressing outputs: %w", err)
		}
		b.log().WithField("files", n).Info("compressed outputs")
	}
	return nil
}

// datasets returns each data file with a schema covering every mode that
// reads it.
func (b *Builder) datasets() map[string]Schema {
	o := make(map[string]Schema)
	for _, name := range b.Config.ModeNames() {
		m, _ := b.Config.Mode(name)
		s, ok := o[m.Data]
		if !ok {
			s = DefaultSchema()
		}
		ms := m.Schema()
		for _, f := range ms.Numbers {
			s = s.WithNumbers(f.Name)
		}
		o[m.Data] = s
	}
	return o
}

func (b *Builder) dataset(file string, s Schema) error {
	f, err := os.Open(filepath.Join(b.Src, file))
	if err != nil {
		return fmt.Errorf("electionmaps: %w", err)
	}
	defer f.Close()
	fc, err := DecodeCollection(f)
	if err != nil {
		return fmt.Errorf("electionmaps: %s: %w", file, err)
	}
	idx, err := BuildIndex(fc, s)
	if errors.Is(err, ErrNoFeatures) {
		b.log().WithField("file", file).Warn("dataset has no features")
	}
	Simplify(fc, b.Tolerance)

	out, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("electionmaps: %s: %w", file, err)
	}
	if err := b.write(file, out); err != nil {
		return err
	}
	b.log().WithFields(logrus.Fields{
		"file":      file,
		"features":  len(fc.Features),
		"precincts": idx.Len(),
	}).Info("built dataset")
	return nil
}

// Simplify reduces the vertex count of every feature in fc in place.
// A tolerance of zero or less leaves fc unchanged.
func Simplify(fc *geojson.FeatureCollection, tolerance float64) {
	if tolerance <= 0 || fc == nil {
		return
	}
	s := simplify.DouglasPeucker(tolerance)
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		f.Geometry = s.Simplify(f.Geometry)
	}
}

func (b *Builder) barCharts() error {
	f, err := os.Open(filepath.Join(b.Src, MeasuresFile))
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()
	ms, err := ReadMeasures(f, b.Config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(b.Out, "bar-chart"), 0755); err != nil {
		return err
	}
	for _, m := range ms {
		img, err := BarChartPNG(m)
		if err != nil {
			return fmt.Errorf("electionmaps: bar chart for %s: %w", m.Proposition, err)
		}
		if err := b.write(filepath.Join("bar-chart", m.Proposition+".png"), img); err != nil {
			return err
		}
		b.log().WithFields(logrus.Fields{
			"proposition": m.Proposition,
			"yes":         m.Yes,
			"threshold":   m.Threshold,
			"passed":      m.Passed(),
		}).Info("proposition result")
	}
	return nil
}

func (b *Builder) write(name string, data []byte) error {
	if err := ioutil.WriteFile(filepath.Join(b.Out, name), data, 0644); err != nil {
		return fmt.Errorf("electionmaps: %w", err)
	}
	return nil
}
