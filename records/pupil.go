package records

import (
	"fmt"
	"strings"
)

// Pupil is a named record with an ordered list of hobby tags.
type Pupil struct {
	name    string
	hobbies []string
}

// NewPupil returns a Pupil. The hobbies slice is copied.
func NewPupil(name string, hobbies ...string) Pupil {
	h := make([]string, len(hobbies))
	copy(h, hobbies)
	return Pupil{name: name, hobbies: h}
}

// Name returns the pupil's name.
func (p Pupil) Name() string { return p.name }

// Hobbies returns a copy of the hobby tags, in order.
func (p Pupil) Hobbies() []string {
	out := make([]string, len(p.hobbies))
	copy(out, p.hobbies)
	return out
}

// String renders the pupil as "Pupil(name=<name>, hobbies=[a, b])".
func (p Pupil) String() string {
	return fmt.Sprintf("Pupil(name=%s, hobbies=[%s])", p.name, strings.Join(p.hobbies, ", "))
}
