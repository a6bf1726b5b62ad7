package electionmaps

import (
	"bytes"
	"fmt"
	"html/template"
)

var infoTemplates = template.Must(template.New("info").Parse(`
{{- define "header"}}<div><strong>Precinct {{.ID}}</strong></div>{{end -}}

{{- define "yesno"}}{{template "header" .}}
<div>Yes: {{.Yes}} • No: {{.No}}{{if .Turnout}} • Turnout: {{.Turnout}}{{end}}</div>
{{- end -}}

{{- define "candidates"}}{{template "header" .}}
<div>{{range $i, $c := .Candidates}}{{if $i}} • {{end}}{{$c.Label}}: {{$c.Percent}}{{end}}{{if .Turnout}} • Turnout: {{.Turnout}}{{end}}</div>
{{- end -}}

{{- define "turnout"}}{{template "header" .}}
<div class="info-stats">Turnout: {{.Turnout}}{{if .Registered}} • {{.Registered}} registered voters{{end}}{{if .Cast}} • Votes cast: {{.Cast}}{{end}}</div>
{{- end -}}

{{- define "winner"}}<div class="precinct-card"><h3>Precinct {{.ID}}</h3><hr>
{{- range .Candidates}}
<p>{{if .Winner}}<strong>{{.Label}}</strong>: <strong>{{.Percent}}</strong> (<strong>{{.Votes}}</strong>){{else}}{{.Label}}: {{.Percent}} ({{.Votes}}){{end}}</p>
{{- end}}
</div>
{{- end -}}

{{- define "nodata"}}{{template "header" .}}
<div>No data for this precinct</div>
{{- end -}}

{{- define "error"}}<div class="error" style="color:#b00">Error loading maps: {{.}}</div>{{end -}}
`))

type candidateView struct {
	Label   string
	Percent string
	Votes   string
	Winner  bool
}

type infoView struct {
	ID         string
	Yes, No    string
	Turnout    string
	Registered string
	Cast       string
	Candidates []candidateView
}

func displayID(id string) string {
	if id == "" {
		return NotAvailable
	}
	return id
}

// RenderInfo renders the info panel HTML for r using m's template.
func RenderInfo(m *Mode, r *Record) (string, error) {
	v := infoView{ID: displayID(r.ID)}
	name := m.Info.Template
	switch name {
	case InfoYesNo:
		yes := r.Number(FieldYesPerc)
		v.Yes = FormatPercent(yes)
		v.No = FormatPercent(complement(yes))
		if t := r.Number(FieldTurnout); t.Valid || m.Info.Turnout {
			v.Turnout = FormatPercent(t)
		}
	case InfoCandidates:
		for _, c := range m.Info.Candidates {
			v.Candidates = append(v.Candidates, candidateView{
				Label:   c.Short,
				Percent: FormatPercent(r.Number(c.Percent)),
			})
		}
		if t := r.Number(FieldTurnout); t.Valid || m.Info.Turnout {
			v.Turnout = FormatPercent(t)
		}
	case InfoTurnout:
		v.Turnout = FormatPercentNonZero(r.Number(FieldTurnout))
		if n := r.Number(FieldRegisteredVoters); n.Valid && n.Value != 0 {
			v.Registered = FormatCount(n)
		}
		if n := r.Number(FieldVotesCast); n.Valid && n.Value != 0 {
			v.Cast = FormatCount(n)
		}
	case InfoWinner:
		winner := -1
		best := Number{}
		for i, c := range m.Info.Candidates {
			votes := r.Number(c.Votes)
			if winner < 0 || (votes.Valid && (!best.Valid || votes.Value > best.Value)) {
				winner, best = i, votes
			}
		}
		for i, c := range m.Info.Candidates {
			v.Candidates = append(v.Candidates, candidateView{
				Label:   c.Name,
				Percent: FormatPercent(r.Number(c.Percent)),
				Votes:   FormatCount(r.Number(c.Votes)),
				Winner:  i == winner,
			})
		}
	default:
		return "", fmt.Errorf("electionmaps: unknown info template %q", name)
	}
	return execute(name, v)
}

// RenderNoData renders the card shown for a precinct missing from a view's
// dataset.
func RenderNoData(id string) string {
	s, err := execute("nodata", infoView{ID: displayID(id)})
	if err != nil {
		return ""
	}
	return s
}

// RenderError renders an inline data-load error.
func RenderError(err error) string {
	s, _ := execute("error", err.Error())
	return s
}

func execute(name string, data interface{}) (string, error) {
	var b bytes.Buffer
	if err := infoTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("electionmaps: rendering %s: %w", name, err)
	}
	return b.String(), nil
}
