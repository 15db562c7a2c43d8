package engine

import "strconv"

// ValidationError is returned when a required field is absent: a nil value
// passed to a typed setter, a nil name-keyed set, or a nil slot at build
// time.
type ValidationError struct{ Field string }

// Error implements the error interface.
func (e ValidationError) Error() string {
	// Example: engine: pricing must not be null
	return "engine: " + e.Field + " must not be null"
}

// UnknownPropertyError is returned when a name-indexed get, set or coercion
// references a name outside the fixed four properties. It indicates a
// programming error in the caller, not a runtime condition to recover from.
type UnknownPropertyError struct{ Name string }

// Error implements the error interface.
func (e UnknownPropertyError) Error() string {
	// Example: engine: unknown property "bogus"
	return "engine: unknown property " + strconv.Quote(e.Name)
}

// ParseError is returned when text-to-value coercion fails for a field.
// Field and Text carry enough context for the caller to report the failure;
// Err is the underlying rules parse error.
type ParseError struct {
	Field string
	Text  string
	Err   error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	// Example: engine: cannot set pricing from "bogus": rules: ...
	return "engine: cannot set " + e.Field + " from " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

// Unwrap returns the underlying parse error.
func (e ParseError) Unwrap() error { return e.Err }

// WrongTypeError is returned when a name-keyed set receives a value of the
// wrong dynamic type for the property.
//
// GotType is reflect.TypeOf(value).String() for the rejected value.
type WrongTypeError struct {
	Name    string
	GotType string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: engine: property "pricing" cannot hold *rules.ReportingRules
	return "engine: property " + strconv.Quote(e.Name) + " cannot hold " + e.GotType
}
