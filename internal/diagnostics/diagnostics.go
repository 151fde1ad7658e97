// Package diagnostics defines the error taxonomy of spec.md §7.
//
// Grounded on the NewError(code, token, message) constructor idiom the
// teacher's analyzer calls into (internal/analyzer/statements.go:553,
// diagnostics.NewError(diagnostics.ErrA003, n.Name.GetToken(), ...)); the
// diagnostics package itself was not retained by the retrieval pack, only
// its call sites, so the shape here is reconstructed to match that usage
// rather than copied.
package diagnostics

import "fmt"

// Code identifies an error kind, stable across versions so hosts can match
// on it rather than on message text.
type Code string

const (
	// CodeDomainError marks invalid recurrence parameters: a_i <= 0,
	// b_i not in (0,1), or an empty term list.
	CodeDomainError Code = "DomainError"

	// CodeNotApplicable marks a recurrence that does not fit the theorem
	// being attempted; ViolatedConditions explains why.
	CodeNotApplicable Code = "NotApplicable"

	// CodeNumericNonConvergence marks a root finder or integrator that did
	// not meet tolerance within its iteration cap.
	CodeNumericNonConvergence Code = "NumericNonConvergence"

	// CodeIncomplete marks a surface-supplied marker for a procedure the
	// translator could not fully model; propagates through composition.
	CodeIncomplete Code = "Incomplete"
)

// Error is the concrete error type returned by core operations. Unlike
// UnboundVariable (which evaluate() resolves silently to "no value", not an
// error) and UnclassifiableExpression (which the classifier reports as a
// reduced-confidence Unknown result, not an error), every constructor below
// corresponds to a genuine Code.
type Error struct {
	Code Code
	// Violated lists the specific conditions that failed applicability
	// checks (e.g. "a_2 <= 0", "b_1 not in (0,1)"); empty for codes that
	// don't carry a condition list.
	Violated []string
	Message  string
}

func (e *Error) Error() string {
	if len(e.Violated) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (violated: %v)", e.Code, e.Message, e.Violated)
}

// New builds an Error carrying the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewNotApplicable builds a NotApplicable error carrying the reasons a
// theorem failed to apply.
func NewNotApplicable(message string, violated ...string) *Error {
	return &Error{Code: CodeNotApplicable, Message: message, Violated: violated}
}

// NewDomainError builds a DomainError carrying the invalid parameters found.
func NewDomainError(message string, violated ...string) *Error {
	return &Error{Code: CodeDomainError, Message: message, Violated: violated}
}

// NewNonConvergence builds a NumericNonConvergence error.
func NewNonConvergence(message string) *Error {
	return &Error{Code: CodeNumericNonConvergence, Message: message}
}

// NewIncomplete builds an Incomplete marker error. Hosts that see this
// propagate it through composition and reduce overall confidence rather
// than treating it as fatal.
func NewIncomplete(message string) *Error {
	return &Error{Code: CodeIncomplete, Message: message}
}

// Is allows errors.Is(err, &diagnostics.Error{Code: diagnostics.CodeNotApplicable})
// style matching via a sentinel-free comparison on Code.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
