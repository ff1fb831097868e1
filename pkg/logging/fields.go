package logging

import "time"

func String(key, value string) Field   { return Field{Key: key, Value: value} }
func Int(key string, value int) Field  { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain-specific helpers used by the CLI driver and benchmark harness.
func Step(n int) Field              { return Int("step", n) }
func VertexCount(n int) Field       { return Int("vertices", n) }
func EdgeCount(n int) Field         { return Int("edges", n) }
func KineticEnergy(e float64) Field { return Float64("kinetic_energy", e) }
func Strategy(name string) Field    { return String("strategy", name) }
