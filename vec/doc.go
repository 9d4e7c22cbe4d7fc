// Package vec provides small fixed-arity float64 vector types (Vec2, Vec3,
// Vec4) with named components and componentwise arithmetic.
//
// 🚀 Why its own vector types?
//
//	Noise evaluation and its adjoints speak in 1–4 dimensional points with
//	named axes (.X, .Y, .Z, .W).  The types here are plain value structs:
//	  • no allocation — everything lives on the stack
//	  • no methods mutate their receiver — arithmetic returns new values
//	  • safe to copy, compare, and share across goroutines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/noisegrad/vec"
//
//	p := vec.Vec2{X: 1.5, Y: -0.25}
//	q := p.Add(vec.Vec2{X: 0.5, Y: 0.25}) // {2, 0}
//	d := p.Dot(q)                          // 3.0
//
// Normalize on a zero vector returns the zero vector unchanged; callers that
// need a unit fallback must supply their own.
package vec
