package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single configuration value of a generator, keyed by
// the same name its FromMap accepts.
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

// ParameterSnapshot captures the configuration a generator was built with.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Map flattens the snapshot back into FromMap-compatible key/value pairs.
func (s ParameterSnapshot) Map() map[string]string {
	m := map[string]string{}
	for _, g := range s.Groups {
		for _, p := range g.Params {
			m[p.Key] = p.Value
		}
	}
	return m
}

// IntParam builds an integer Parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param builds an integer Parameter from an int64.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a floating-point Parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

// PointParams builds the x/y parameter pair for a point under prefix.
func PointParams(prefix, label string, p Point) []Parameter {
	return []Parameter{
		FloatParam(prefix+"x", label+" x", p.X),
		FloatParam(prefix+"y", label+" y", p.Y),
	}
}

// BoundsParams builds the four parameters describing b under prefix.
func BoundsParams(prefix string, b Bounds) []Parameter {
	return []Parameter{
		FloatParam(prefix+"xmin", "X min", b.Min.X),
		FloatParam(prefix+"xmax", "X max", b.Max.X),
		FloatParam(prefix+"ymin", "Y min", b.Min.Y),
		FloatParam(prefix+"ymax", "Y max", b.Max.Y),
	}
}
