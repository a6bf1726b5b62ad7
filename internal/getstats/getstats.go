// Package getstats summarizes the precinct datasets of each display mode.
package getstats

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/mlnow/electionmaps"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is the citywide view of one mode's dataset.
type Summary struct {
	Mode      string
	Precincts int
	// Registered and Cast are totals over precincts that report them.
	Registered float64
	Cast       float64
	// Turnout is weighted by registered voters and YesShare by votes cast.
	// Both are NaN when no precinct has the values needed.
	Turnout  float64
	YesShare float64
}

// Summarize computes the summary of idx for m. Turnouts of zero are left
// out when m's paint treats them as missing results.
func Summarize(m *electionmaps.Mode, idx *electionmaps.Index) Summary {
	s := Summary{Mode: m.Name, Precincts: idx.Len()}
	skipZero := m.Paint.ZeroIsMissing(electionmaps.FieldTurnout)
	var reg, cast, turnout, turnoutW, yes, yesW []float64
	for _, id := range idx.IDs() {
		r, _ := idx.Lookup(id)
		rv := r.Number(electionmaps.FieldRegisteredVoters)
		vc := r.Number(electionmaps.FieldVotesCast)
		if rv.Valid {
			reg = append(reg, rv.Value)
		}
		if vc.Valid {
			cast = append(cast, vc.Value)
		}
		if t := r.Number(electionmaps.FieldTurnout); t.Valid && rv.Valid && !(skipZero && t.Value == 0) {
			turnout = append(turnout, t.Value)
			turnoutW = append(turnoutW, rv.Value)
		}
		if y := r.Number(electionmaps.FieldYesPerc); y.Valid && vc.Valid {
			yes = append(yes, y.Value)
			yesW = append(yesW, vc.Value)
		}
	}
	s.Registered = floats.Sum(reg)
	s.Cast = floats.Sum(cast)
	s.Turnout = weightedMean(turnout, turnoutW)
	s.YesShare = weightedMean(yes, yesW)
	return s
}

func weightedMean(x, w []float64) float64 {
	if len(x) == 0 || floats.Sum(w) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, w)
}

// Header is the first row written by WriteCSV.
var Header = []string{"mode", "precincts", "registered_voters", "votes_cast", "turnout", "yes_share"}

// WriteCSV writes one row per summary. Unavailable values are left empty.
func WriteCSV(w io.Writer, summaries []Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write([]string{
			s.Mode,
			strconv.Itoa(s.Precincts),
			format(s.Registered),
			format(s.Cast),
			format(s.Turnout),
			format(s.YesShare),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func format(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
