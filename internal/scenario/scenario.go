// Package scenario loads scripted route sequences for the wayline CLI.
//
// A scenario is a YAML file describing the target routes a router should walk
// through, with optional per-step pacing:
//
//	name: checkout demo
//	steps:
//	  - route: [home]
//	  - route: [home, catalog, item]
//	    delay: 250ms
//	  - route: [home, checkout]
//	    animate: false
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/wayline/pkg/domain"
)

// Scenario is a named sequence of route targets.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is one target route plus pacing.
type Step struct {
	Route   []string
	Animate bool
	Delay   time.Duration
}

// State converts the step into the navigation state a router consumes.
func (s Step) State() domain.NavigationState {
	return domain.NavigationState{
		Route:   domain.NewRoute(s.Route...),
		Animate: s.Animate,
	}
}

// rawStep carries the YAML shape before defaults are applied.
// Animate defaults to true when omitted, so it decodes through a pointer.
type rawStep struct {
	Route   []string      `mapstructure:"route"`
	Animate *bool         `mapstructure:"animate"`
	Delay   time.Duration `mapstructure:"delay"`
}

type rawScenario struct {
	Name  string    `mapstructure:"name"`
	Steps []rawStep `mapstructure:"steps"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid scenario yaml: %w", err)
	}

	var raw rawScenario
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("invalid scenario structure: %w", err)
	}

	if len(raw.Steps) == 0 {
		return nil, fmt.Errorf("scenario has no steps")
	}

	sc := &Scenario{Name: raw.Name, Steps: make([]Step, len(raw.Steps))}
	for i, rs := range raw.Steps {
		animate := true
		if rs.Animate != nil {
			animate = *rs.Animate
		}
		if rs.Delay < 0 {
			return nil, fmt.Errorf("step %d: negative delay", i)
		}
		sc.Steps[i] = Step{Route: rs.Route, Animate: animate, Delay: rs.Delay}
	}
	return sc, nil
}
