package features

import "strings"

// Set is a bit set of WebAssembly proposals.
type Set uint32

const (
	Atomics Set = 1 << iota
	MutableGlobals
	TruncSat
	SIMD
	BulkMemory
	SignExt
	ExceptionHandling
	TailCall
	ReferenceTypes
	Multivalue
	GC
	Memory64

	featureCount = iota
)

const (
	// MVP is the empty set: no proposals enabled.
	MVP Set = 0
	// All enables every known proposal.
	All Set = 1<<featureCount - 1
)

var names = [featureCount]string{
	"threads",
	"mutable-globals",
	"nontrapping-float-to-int",
	"simd",
	"bulk-memory",
	"sign-ext",
	"exception-handling",
	"tail-call",
	"reference-types",
	"multivalue",
	"gc",
	"memory64",
}

// Has reports whether every feature in f is enabled in s.
func (s Set) Has(f Set) bool {
	return s&f == f
}

// Add enables the features in f.
func (s *Set) Add(f Set) {
	*s |= f
}

// Remove disables the features in f.
func (s *Set) Remove(f Set) {
	*s &^= f
}

// IsMVP reports whether no features are enabled.
func (s Set) IsMVP() bool {
	return s == MVP
}

// Names returns the canonical names of the enabled features, in bit order.
func (s Set) Names() []string {
	var out []string
	for i := 0; i < featureCount; i++ {
		if s&(1<<i) != 0 {
			out = append(out, names[i])
		}
	}
	return out
}

// String returns the enabled feature names joined by '|', or "mvp" for the
// empty set.
func (s Set) String() string {
	if s.IsMVP() {
		return "mvp"
	}
	return strings.Join(s.Names(), "|")
}
