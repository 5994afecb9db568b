package records

import (
	"fmt"
	"strconv"
	"strings"
)

// Student pairs a display name, which may change, with an identifier (NIM)
// fixed at construction.
type Student struct {
	Name string
	nim  string
}

// NewStudent returns a Student with the given name and identifier.
func NewStudent(name, nim string) *Student {
	return &Student{Name: name, nim: nim}
}

// NIM returns the identifier.
func (s *Student) NIM() string { return s.nim }

// NIMNumber parses the identifier as a base-10 integer.
// A malformed identifier yields an error wrapping [ErrMalformedIdentifier].
func (s *Student) NIMNumber() (int, error) {
	n, err := strconv.Atoi(s.nim)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedIdentifier, s.nim, err)
	}
	return n, nil
}

// Rename replaces the display name.
func (s *Student) Rename(name string) { s.Name = name }

// Upper upper-cases the display name in place.
func (s *Student) Upper() { s.Name = strings.ToUpper(s.Name) }

// Is reports whether s has the given name and identifier.
func (s *Student) Is(name, nim string) bool {
	return s.Name == name && s.nim == nim
}

// String renders the student as "Student(name=<name>, nim=<nim>)".
func (s *Student) String() string {
	return fmt.Sprintf("Student(name=%s, nim=%s)", s.Name, s.nim)
}
