package electionmaps

import "github.com/paulmach/orb"

// Vote share palette, from deep red (mostly No) to deep blue (mostly Yes).
var yesPalette = []Color{
	"#990000", "#E02214", "#E54C4C", "#EE7651", "#EF9F6A", "#FFCB78",
	"#9DF4D9", "#65EAD0", "#0DD6C7", "#0DC1D3", "#00A4BF", "#007DBC",
}

var yesBins = []string{
	"Less than 25%", "25-30%", "30-35%", "35-40%", "40-45%", "45-50%",
	"50-55%", "55-60%", "60-65%", "65-70%", "70-75%", "75% and more",
}

var turnoutPalette = []Color{
	"#9DF4D9", "#65EAD0", "#0DD6C7", "#0DC1D3", "#00A4BF", "#007DBC",
	"#005A8C", "#003F5C", "#00233B", "#001F2A", "#001622", "#000F19",
}

func binCategories(colors []Color) []Category {
	o := make([]Category, len(yesBins))
	for i, b := range yesBins {
		o[i] = Category{Label: b, Color: colors[i]}
	}
	return o
}

// percentSteps buckets a percentage in 5 point steps from 25 to 75.
func percentSteps() []Threshold {
	o := make([]Threshold, 0, len(yesPalette)-1)
	for i, c := range yesPalette[1:] {
		o = append(o, Threshold{Min: float64(25 + 5*i), Color: c})
	}
	return o
}

var d4Candidates = []Candidate{
	{Key: "joel_engardio", Name: "Joel Engardio", Short: "Engardio", Percent: "joel_engardio_p", Votes: "joel_engardio"},
	{Key: "gordon_mar", Name: "Gordon Mar", Short: "Mar", Percent: "gordon_mar_p", Votes: "gordon_mar"},
}

const basemapStyle = "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png"

// DefaultConfig returns the San Francisco election pages.
func DefaultConfig() *Config {
	yesLegend := Legend{Title: "Yes vote %", Left: "No", Right: "Yes"}
	binPaint := Paint{
		Kind:       Categorical,
		Property:   FieldYesPercBin,
		Categories: binCategories(yesPalette),
		Default:    NeutralColor,
		Opacity:    0.6,
	}
	sf := ViewState{Center: orb.Point{-122.496, 37.750}, Zoom: 12.5}

	c := &Config{
		Modes: map[string]*Mode{
			"propA": {
				Title:  "Nov. 2024 Proposition A",
				Data:   "propA.geojson",
				Paint:  binPaint,
				Legend: yesLegend,
				Info:   InfoConfig{Template: InfoYesNo, Turnout: true},
			},
			"propK": {
				Title:  "Nov. 2024 Proposition K",
				Data:   "propK.geojson",
				Paint:  binPaint,
				Legend: yesLegend,
				Info:   InfoConfig{Template: InfoYesNo, Turnout: true},
			},
			"d4_2022": {
				Title: "Nov. 2022 supervisor election",
				Data:  "d4.geojson",
				Paint: Paint{
					Kind:     Step,
					Property: "joel_engardio_p",
					Below:    yesPalette[0],
					Steps:    percentSteps(),
					Default:  NeutralColor,
					Opacity:  0.6,
				},
				Legend: Legend{Title: "Engardio % of first votes", Left: "0%", Right: "100%"},
				Info:   InfoConfig{Template: InfoCandidates, Candidates: d4Candidates, Turnout: true},
			},
			"d4_winner": {
				Title: "Nov. 2022 District 4 supervisor",
				Data:  "d4.geojson",
				Paint: Paint{
					Kind:     Categorical,
					Property: FieldWinner,
					Categories: []Category{
						{Label: "joel_engardio", Color: "#57a4ea"},
						{Label: "gordon_mar", Color: "#46c134"},
					},
					Default: NeutralColor,
					Opacity: 0.6,
				},
				Legend: Legend{Title: "Precinct winner", Left: "Engardio", Right: "Mar"},
				Info:   InfoConfig{Template: InfoWinner, Candidates: d4Candidates},
			},
			"turnout": {
				Title: "Nov. 2024 turnout",
				Data:  "turnout.geojson",
				Paint: Paint{
					Kind:         Categorical,
					Property:     FieldYesPerc,
					Categories:   binCategories(turnoutPalette),
					Default:      NeutralColor,
					Opacity:      0.6,
					ZeroIsNoData: []string{FieldTurnout, FieldYesPerc},
				},
				Legend: Legend{Title: "Turnout", Left: "0%", Right: "100%"},
				Info:   InfoConfig{Template: InfoTurnout},
			},
		},
		Pages: map[string]*Page{
			"propA": {
				Maps:    []MapConfig{{ID: "map", Modes: []string{"propA"}, Panel: "info-box", Legend: "legend"}},
				Desktop: sf,
				Style:   basemapStyle,
			},
			"turnout": {
				Maps:    []MapConfig{{ID: "map", Modes: []string{"turnout"}, Panel: "info-box", Legend: "legend"}},
				Desktop: ViewState{Center: sf.Center, Zoom: 12.2},
				Style:   basemapStyle,
			},
			"2022": {
				Maps:    []MapConfig{{ID: "map", Modes: []string{"d4_winner"}, Panel: "info-box", Legend: "legend"}},
				Desktop: sf,
				Style:   basemapStyle,
			},
			"comparison": {
				Linked: true,
				Maps: []MapConfig{
					{ID: "map1", Modes: []string{"propA"}, Panel: "info-map1", Legend: "legend1"},
					{ID: "map2", Modes: []string{"propK", "d4_2022"}, Panel: "info-map2", Legend: "legend2", Title: "map2title", Selector: "map2Mode"},
				},
				Desktop: sf,
				Style:   basemapStyle,
			},
			"comparison-2022": {
				Linked: true,
				Maps: []MapConfig{
					{ID: "map1", Modes: []string{"propA"}, Panel: "info-map1", Legend: "legend1"},
					{ID: "map2", Modes: []string{"d4_2022", "propK"}, Panel: "info-map2", Legend: "legend2", Title: "map2title", Selector: "map2Mode"},
				},
				Desktop:    ViewState{Center: orb.Point{-122.494, 37.753}, Zoom: 12},
				Mobile:     ViewState{Center: orb.Point{-122.508, 37.750}, Zoom: 11.7},
				Breakpoint: 640,
				Style:      basemapStyle,
			},
		},
		Thresholds:       map[string]float64{"A": 55, "B": 66.67},
		DefaultThreshold: 50,
	}
	c.fill()
	return c
}
