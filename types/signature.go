package types

// Signature pairs the parameter and result types of a function, event, or
// indirect call target. Either side may be None, a single type, or a tuple.
type Signature struct {
	Params  Type
	Results Type
}

// NewSignature builds a signature from parameter and result types.
func NewSignature(params, results Type) Signature {
	return Signature{Params: params, Results: results}
}

// String returns the arrow form, e.g. "(i32 i32) -> i64".
func (s Signature) String() string {
	return s.Params.String() + " -> " + s.Results.String()
}
