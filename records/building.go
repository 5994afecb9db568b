package records

// Building is anything that can report what kind of building it is.
type Building interface {
	Kind() string
}

// House is the concrete [Building] used by the type-assertion demo.
type House struct{}

// Kind implements [Building].
func (House) Kind() string { return "House" }

// String returns the kind.
func (h House) String() string { return h.Kind() }
