/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package unitext

// Status identifies the outcome of a transcoding or string operation. It is
// carried inside the error values returned by this module's packages so
// that callers can distinguish failure kinds with errors.Is, rather than
// string-matching error text.
type Status int

const (
	StatusSuccess Status = iota
	StatusInvalidArgument
	StatusNoSpace
	StatusRange
	StatusBomForbidden
	StatusInvalidCodepoint
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusNoSpace:
		return "no space"
	case StatusRange:
		return "range"
	case StatusBomForbidden:
		return "bom forbidden"
	case StatusInvalidCodepoint:
		return "invalid codepoint"
	default:
		return "unknown status"
	}
}

// StatusError is the concrete error type returned on failure. Every
// sentinel error below (ErrInvalidArgument, ErrNoSpace, ...) is a
// *StatusError; compare with errors.Is against those sentinels rather than
// against this type directly.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return e.Status.String()
}

var (
	// ErrInvalidArgument reports a nil required input, or a
	// multi-unit sequence truncated before it could be completed.
	ErrInvalidArgument = &StatusError{StatusInvalidArgument}

	// ErrNoSpace reports that the output buffer is too small to hold the
	// result, including its terminator.
	ErrNoSpace = &StatusError{StatusNoSpace}

	// ErrRange reports that a bounded byte copy/concat would overflow its
	// destination capacity.
	ErrRange = &StatusError{StatusRange}

	// ErrBOMForbidden reports a byte order mark present while ForbidBOM
	// was set.
	ErrBOMForbidden = &StatusError{StatusBomForbidden}

	// ErrInvalidCodepoint reports an invalid scalar encountered while
	// StrictCodePoints was set.
	ErrInvalidCodepoint = &StatusError{StatusInvalidCodepoint}
)
