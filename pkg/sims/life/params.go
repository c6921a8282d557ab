package life

import (
	"strconv"

	"golife/pkg/core"
)

// Parameters reports the grid configuration and live counters for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				intParam("workers", "Workers", l.workers),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
