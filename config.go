package electionmaps

import (
	"errors"
	"fmt"
	"io/ioutil"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config describes the display modes and the pages built from them.
type Config struct {
	Modes map[string]*Mode `yaml:"modes"`
	Pages map[string]*Page `yaml:"pages"`

	// Thresholds holds the vote share a proposition needs to pass, by
	// proposition letter. DefaultThreshold applies to the rest.
	Thresholds       map[string]float64 `yaml:"thresholds,omitempty"`
	DefaultThreshold float64            `yaml:"defaultThreshold,omitempty"`
}

// Mode is one dataset together with the way it is drawn and described.
type Mode struct {
	Name   string     `yaml:"-"`
	Title  string     `yaml:"title"`
	Data   string     `yaml:"data"`
	Paint  Paint      `yaml:"paint"`
	Legend Legend     `yaml:"legend"`
	Info   InfoConfig `yaml:"info"`
}

// Schema returns the fields indexed for m.
func (m *Mode) Schema() Schema {
	names := []string{m.Paint.Property}
	names = append(names, m.Paint.ZeroIsNoData...)
	for _, c := range m.Info.Candidates {
		names = append(names, c.Percent, c.Votes)
	}
	return DefaultSchema().WithNumbers(names...)
}

// Legend is the title and end labels of a swatch legend.
type Legend struct {
	Title string `yaml:"title"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Info template names.
const (
	InfoYesNo      = "yesno"
	InfoCandidates = "candidates"
	InfoTurnout    = "turnout"
	InfoWinner     = "winner"
)

// InfoConfig selects and parameterizes the info panel template.
type InfoConfig struct {
	Template   string      `yaml:"template"`
	Candidates []Candidate `yaml:"candidates,omitempty"`
	// Turnout always shows the turnout figure, as N/A when missing.
	Turnout bool `yaml:"turnout,omitempty"`
}

// Candidate names the properties holding one candidate's results.
type Candidate struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Short   string `yaml:"short"`
	Percent string `yaml:"percent"`
	Votes   string `yaml:"votes,omitempty"`
}

// Page is one embeddable page with one or more maps.
type Page struct {
	Name   string      `yaml:"-"`
	Maps   []MapConfig `yaml:"maps"`
	Linked bool        `yaml:"linked,omitempty"`

	Desktop ViewState `yaml:"desktop"`
	Mobile  ViewState `yaml:"mobile"`
	// Breakpoint is the widest viewport, in CSS pixels, that uses Mobile.
	Breakpoint int `yaml:"breakpoint,omitempty"`
	// Style is the basemap tile URL template.
	Style string `yaml:"style,omitempty"`
}

// View returns the preset for a viewport of the given width.
func (p *Page) View(width int) ViewState {
	if p.Breakpoint > 0 && width <= p.Breakpoint && p.Mobile.Zoom > 0 {
		return p.Mobile
	}
	return p.Desktop
}

// MapConfig is one map of a page. Modes[0] is shown first; further modes
// are offered by the Selector element.
type MapConfig struct {
	ID       string   `yaml:"id"`
	Modes    []string `yaml:"modes"`
	Panel    string   `yaml:"panel,omitempty"`
	Legend   string   `yaml:"legend,omitempty"`
	Title    string   `yaml:"title,omitempty"`
	Selector string   `yaml:"selector,omitempty"`
}

// ParseConfig decodes a YAML configuration and validates it.
func ParseConfig(b []byte) (*Config, error) {
	c := new(Config)
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("electionmaps: parsing config: %w", err)
	}
	c.fill()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfig reads and parses the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("electionmaps: reading config: %w", err)
	}
	return ParseConfig(b)
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) fill() {
	for name, m := range c.Modes {
		if m != nil {
			m.Name = name
		}
	}
	for name, p := range c.Pages {
		if p != nil {
			p.Name = name
		}
	}
}

// Mode returns the named mode.
func (c *Config) Mode(name string) (*Mode, error) {
	m, ok := c.Modes[name]
	if !ok || m == nil {
		return nil, fmt.Errorf("electionmaps: unknown mode %q", name)
	}
	return m, nil
}

// Page returns the named page.
func (c *Config) Page(name string) (*Page, error) {
	p, ok := c.Pages[name]
	if !ok || p == nil {
		return nil, fmt.Errorf("electionmaps: unknown page %q", name)
	}
	return p, nil
}

// ModeNames returns the sorted mode names.
func (c *Config) ModeNames() []string {
	o := make([]string, 0, len(c.Modes))
	for n := range c.Modes {
		o = append(o, n)
	}
	sort.Strings(o)
	return o
}

// Threshold returns the share proposition needs to pass.
func (c *Config) Threshold(proposition string) float64 {
	if t, ok := c.Thresholds[proposition]; ok {
		return t
	}
	if c.DefaultThreshold > 0 {
		return c.DefaultThreshold
	}
	return 50
}

// Validate checks modes and pages for consistency.
func (c *Config) Validate() error {
	var errs []error
	for _, name := range c.ModeNames() {
		m := c.Modes[name]
		if m == nil {
			errs = append(errs, fmt.Errorf("electionmaps: mode %q is empty", name))
			continue
		}
		if m.Data == "" {
			errs = append(errs, fmt.Errorf("electionmaps: mode %q has no data", name))
		}
		if err := m.Paint.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("mode %q: %w", name, err))
		}
		switch m.Info.Template {
		case InfoYesNo, InfoTurnout:
		case InfoCandidates, InfoWinner:
			if len(m.Info.Candidates) == 0 {
				errs = append(errs, fmt.Errorf("electionmaps: mode %q: template %q needs candidates", name, m.Info.Template))
			}
		default:
			errs = append(errs, fmt.Errorf("electionmaps: mode %q: unknown info template %q", name, m.Info.Template))
		}
	}
	for name, p := range c.Pages {
		if p == nil || len(p.Maps) == 0 {
			errs = append(errs, fmt.Errorf("electionmaps: page %q has no maps", name))
			continue
		}
		if p.Linked && len(p.Maps) != 2 {
			errs = append(errs, fmt.Errorf("electionmaps: linked page %q needs exactly 2 maps", name))
		}
		for _, mc := range p.Maps {
			if mc.ID == "" {
				errs = append(errs, fmt.Errorf("electionmaps: page %q has a map without id", name))
			}
			if len(mc.Modes) == 0 {
				errs = append(errs, fmt.Errorf("electionmaps: page %q map %q has no modes", name, mc.ID))
			}
			for _, mn := range mc.Modes {
				if _, ok := c.Modes[mn]; !ok {
					errs = append(errs, fmt.Errorf("electionmaps: page %q map %q: unknown mode %q", name, mc.ID, mn))
				}
			}
		}
	}
	return errors.Join(errs...)
}
