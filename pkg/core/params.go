package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
)

// Parameter describes a single value a simulation reports for display.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that expose a snapshot for the HUD.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lines flattens the snapshot into "Label: value" rows, one header per group.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		if g.Name != "" {
			lines = append(lines, "["+g.Name+"]")
		}
		for _, p := range g.Params {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}
