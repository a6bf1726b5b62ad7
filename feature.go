package electionmaps

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// ErrNoFeatures is returned alongside an empty index when a collection
// has no features at all. Callers should log it and carry on.
var ErrNoFeatures = errors.New("electionmaps: collection has no features")

// Field is a logical record field together with the ordered list of
// property names it may be stored under in the source data.
type Field struct {
	Name    string
	Sources []string
}

// Schema declares which properties are pulled out of a feature when it is
// indexed.
type Schema struct {
	ID      Field
	Numbers []Field
	Labels  []Field
}

// Logical field names shared by all datasets.
const (
	FieldPrecinct         = "precinct"
	FieldTurnout          = "turnout"
	FieldYesPerc          = "yes_perc"
	FieldYesPercBin       = "yes_perc_bin"
	FieldRegisteredVoters = "registered_voters"
	FieldVotesCast        = "votes_cast"
	FieldWinner           = "winner"
)

// DefaultSchema returns the fields present in every precinct dataset.
func DefaultSchema() Schema {
	return Schema{
		ID: Field{Name: FieldPrecinct, Sources: []string{"precinct", "Precinct", "PCT", "pct"}},
		Numbers: []Field{
			{Name: FieldTurnout, Sources: []string{"turnout", "turnout_pct", "turnout_p", "Turnout"}},
			{Name: FieldYesPerc, Sources: []string{"yes_perc"}},
			{Name: FieldRegisteredVoters, Sources: []string{"registered_voters"}},
			{Name: FieldVotesCast, Sources: []string{"votes_cast"}},
		},
		Labels: []Field{
			{Name: FieldYesPercBin, Sources: []string{"yes_perc_bin"}},
			{Name: FieldWinner, Sources: []string{"winner"}},
		},
	}
}

// WithNumbers returns a copy of s that also extracts the named numeric
// properties. Names already known to s are ignored.
func (s Schema) WithNumbers(names ...string) Schema {
	o := s
	o.Numbers = append([]Field(nil), s.Numbers...)
	for _, n := range names {
		if n == "" || o.has(n) {
			continue
		}
		o.Numbers = append(o.Numbers, Field{Name: n, Sources: []string{n}})
	}
	return o
}

func (s Schema) has(name string) bool {
	for _, f := range s.Numbers {
		if f.Name == name {
			return true
		}
	}
	for _, f := range s.Labels {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Number is a numeric attribute that may be missing.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a valid Number.
func Num(v float64) Number { return Number{Value: v, Valid: true} }

// toNumber coerces a property value to a Number. Missing, null and
// non-finite values are invalid.
func toNumber(v interface{}) Number {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case Number:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return Number{}
		}
		var err error
		f, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}
		}
	default:
		return Number{}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}
	}
	return Num(f)
}

// keyString converts an identifier value to its trimmed string form.
func keyString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// firstPresent returns the value of the first source property that is
// present and not null.
func firstPresent(props geojson.Properties, sources []string) (interface{}, bool) {
	for _, s := range sources {
		if v, ok := props[s]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// ResolveIdentifier returns the precinct identifier of a properties bag
// using the default schema.
func ResolveIdentifier(props geojson.Properties) (string, bool) {
	return DefaultSchema().Identifier(props)
}

// Identifier returns the identifier stored in props, or false when none of
// the accepted fields carries a non-empty value.
func (s Schema) Identifier(props geojson.Properties) (string, bool) {
	v, ok := firstPresent(props, s.ID.Sources)
	if !ok {
		return "", false
	}
	k := keyString(v)
	return k, k != ""
}

// Record is one precinct's attributes, resolved once at ingestion.
type Record struct {
	ID         string
	Numbers    map[string]Number
	Labels     map[string]string
	Properties geojson.Properties
}

// NewRecord extracts the fields of s from props. It returns false when
// props has no usable identifier.
func (s Schema) NewRecord(props geojson.Properties) (*Record, bool) {
	id, ok := s.Identifier(props)
	if !ok {
		return nil, false
	}
	r := &Record{
		ID:         id,
		Numbers:    make(map[string]Number, len(s.Numbers)),
		Labels:     make(map[string]string, len(s.Labels)),
		Properties: props,
	}
	for _, f := range s.Numbers {
		if v, ok := firstPresent(props, f.Sources); ok {
			r.Numbers[f.Name] = toNumber(v)
		}
	}
	for _, f := range s.Labels {
		if v, ok := firstPresent(props, f.Sources); ok {
			r.Labels[f.Name] = keyString(v)
		}
	}
	return r, true
}

// Number returns the named numeric field. A nil record has no fields.
func (r *Record) Number(name string) Number {
	if r == nil {
		return Number{}
	}
	return r.Numbers[name]
}

// Label returns the named categorical field.
func (r *Record) Label(name string) string {
	if r == nil {
		return ""
	}
	return r.Labels[name]
}

// Index maps precinct identifiers to records. An Index is never updated in
// place; a new dataset gets a new Index.
type Index struct {
	schema  Schema
	records map[string]*Record
	ids     []string
}

// BuildIndex indexes the features of fc. Features without an identifier
// are skipped. When fc holds no features the returned index is empty and
// the error is ErrNoFeatures.
func BuildIndex(fc *geojson.FeatureCollection, s Schema) (*Index, error) {
	idx := &Index{schema: s, records: make(map[string]*Record)}
	if fc == nil || len(fc.Features) == 0 {
		return idx, ErrNoFeatures
	}
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		r, ok := s.NewRecord(f.Properties)
		if !ok {
			continue
		}
		if _, dup := idx.records[r.ID]; !dup {
			idx.ids = append(idx.ids, r.ID)
		}
		idx.records[r.ID] = r
	}
	return idx, nil
}

// Lookup returns the record for id.
func (idx *Index) Lookup(id string) (*Record, bool) {
	if idx == nil || id == "" {
		return nil, false
	}
	r, ok := idx.records[id]
	return r, ok
}

// Len returns the number of indexed precincts.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// IDs returns the indexed identifiers in first-seen order.
func (idx *Index) IDs() []string {
	if idx == nil {
		return nil
	}
	return append([]string(nil), idx.ids...)
}

// Schema returns the schema the index was built with.
func (idx *Index) Schema() Schema { return idx.schema }

// DecodeCollection reads a GeoJSON feature collection.
func DecodeCollection(r io.Reader) (*geojson.FeatureCollection, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("electionmaps: reading collection: %w", err)
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, fmt.Errorf("electionmaps: empty collection document")
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf("electionmaps: decoding collection: %w", err)
	}
	return fc, nil
}
