// Package records defines the small value types the idiom demos operate on:
// [Student], a record with a mutable display name and an immutable
// identifier, and [Pupil], a named record with an ordered list of hobbies.
//
// [Building] and [House] exist only to show a checked type assertion.
package records
