package connstr

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrMalformed is returned by Parse when a connection string cannot be split into key/value pairs.
var ErrMalformed = errors.New("malformed connection string")

// InvalidArgumentError is returned when an argument is nil or blank.
type InvalidArgumentError struct {
	// Param is the name of the offending parameter
	Param string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Param)
}

// IsInvalidArgument reports whether err is an InvalidArgumentError for the given parameter.
func IsInvalidArgument(err error, param string) bool {
	var iae *InvalidArgumentError
	return errors.As(err, &iae) && iae.Param == param
}

// ErrorList is a helper struct for collecting multiple errors.
type ErrorList struct {
	errors            []error
	descriptionPrefix string
}

func NewErrorList(descriptionPrefix string) *ErrorList {
	return &ErrorList{
		descriptionPrefix: descriptionPrefix,
		errors:            []error{},
	}
}

// Add adds an error.
func (l *ErrorList) Add(err error) {
	l.errors = append(l.errors, err)
}

// Errors returns the collected errors.
func (l *ErrorList) Errors() []error {
	return l.errors
}

// ErrorOrNil returns the list itself as an error, or nil if the list is empty.
func (l *ErrorList) ErrorOrNil() error {
	if len(l.errors) == 0 {
		return nil
	}
	return l
}

func (l *ErrorList) Error() string {
	if len(l.errors) == 0 {
		return ""
	}
	buffer := bytes.Buffer{}
	buffer.WriteString(l.descriptionPrefix)
	for i, err := range l.errors {
		buffer.WriteString(err.Error())
		if i+1 < len(l.errors) {
			buffer.WriteString("; ")
		}
	}
	return buffer.String()
}
