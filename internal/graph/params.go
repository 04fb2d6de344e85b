package graph

import (
	"strconv"

	"wavegraph/internal/core"
	"wavegraph/internal/function"
)

const (
	paramResolution = "resolution"
	paramFunction   = "function"
)

// Parameters reports the current configuration for the HUD and headless tools.
func (g *Graph) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: paramResolution, Label: "Resolution", Type: core.ParamTypeInt, Value: strconv.Itoa(g.Resolution())},
				{Key: "scale", Label: "Point scale", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(float64(g.Scale()), 'f', -1, 32)},
			},
		},
		{
			Name: "Animation",
			Params: []core.Parameter{
				{Key: paramFunction, Label: "Function", Type: core.ParamTypeChoice, Value: strconv.Itoa(int(g.fn))},
				{Key: "time", Label: "Time", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(float64(g.t), 'f', 2, 32)},
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (g *Graph) ParameterControls() []core.ParameterControl {
	options := make([]string, 0, function.Count())
	for _, n := range function.Names() {
		options = append(options, n.String())
	}
	return []core.ParameterControl{
		{Key: paramResolution, Label: "Resolution", Type: core.ParamTypeInt, Step: 10, Min: MinResolution, Max: MaxResolution},
		{Key: paramFunction, Label: "Function", Type: core.ParamTypeChoice, Step: 1, Options: options},
	}
}

// SetIntParameter applies a HUD adjustment. A resolution change rebuilds the
// grid and re-evaluates it at the current time.
func (g *Graph) SetIntParameter(key string, value int) bool {
	switch key {
	case paramResolution:
		res := ClampResolution(value)
		if res == g.Resolution() {
			return false
		}
		t := g.t
		g.Initialize(res)
		g.Step(t)
		return true
	case paramFunction:
		name := function.Name(value)
		if !name.Valid() || name == g.fn {
			return false
		}
		g.SetFunction(name)
		return true
	}
	return false
}
