// Package evalerr provides the structured error type shared by the
// tokenizer, parser, and evaluator. A single open-ended error kind
// covers all three phases so callers can type-switch on Kind without
// caring which stage produced the failure.
package evalerr

import "fmt"

// Kind identifies the category of failure. The set is intentionally
// treated as non-exhaustive: callers should not assume they have seen
// every Kind that will ever exist.
type Kind int

const (
	// Tokenize-phase kinds.
	UnmatchedQuote Kind = iota
	TokenizeFailure

	// Parse-phase kinds.
	UnmatchedPartialToken
	UnmatchedRBrace
	MissingOperatorOutsideOfBrace
	WrongOperatorArgumentAmount
	EmptyExpression

	// Evaluate-phase kinds.
	ExpectedString
	ExpectedInt
	ExpectedFloat
	ExpectedNumber
	ExpectedBoolean
	ExpectedTuple
	ExpectedEmpty
	ExpectedVariable
	ExpectedType
	VariableIdentifierNotFound
	FunctionIdentifierNotFound
	ContextNotManipulable
	WrongFunctionArgumentAmount
	DivisionError
	OverflowError

	// CustomMessage wraps a function-provided failure (§7, "user-extensible").
	CustomMessage
)

func (k Kind) String() string {
	switch k {
	case UnmatchedQuote:
		return "UnmatchedQuote"
	case TokenizeFailure:
		return "TokenizeError"
	case UnmatchedPartialToken:
		return "UnmatchedPartialToken"
	case UnmatchedRBrace:
		return "UnmatchedRBrace"
	case MissingOperatorOutsideOfBrace:
		return "MissingOperatorOutsideOfBrace"
	case WrongOperatorArgumentAmount:
		return "WrongOperatorArgumentAmount"
	case EmptyExpression:
		return "EmptyExpression"
	case ExpectedString:
		return "ExpectedString"
	case ExpectedInt:
		return "ExpectedInt"
	case ExpectedFloat:
		return "ExpectedFloat"
	case ExpectedNumber:
		return "ExpectedNumber"
	case ExpectedBoolean:
		return "ExpectedBoolean"
	case ExpectedTuple:
		return "ExpectedTuple"
	case ExpectedEmpty:
		return "ExpectedEmpty"
	case ExpectedVariable:
		return "ExpectedVariable"
	case ExpectedType:
		return "ExpectedType"
	case VariableIdentifierNotFound:
		return "VariableIdentifierNotFound"
	case FunctionIdentifierNotFound:
		return "FunctionIdentifierNotFound"
	case ContextNotManipulable:
		return "ContextNotManipulable"
	case WrongFunctionArgumentAmount:
		return "WrongFunctionArgumentAmount"
	case DivisionError:
		return "DivisionError"
	case OverflowError:
		return "OverflowError"
	case CustomMessage:
		return "CustomMessage"
	default:
		return "Unknown"
	}
}

// Position marks where in the source text an error occurred, in
// byte offset, line and column (1-indexed), matching the convention
// the tokenizer stamps onto every token.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is the single error type returned from every phase.
type Error struct {
	Kind Kind
	Pos  Position

	// Name carries an identifier for VariableIdentifierNotFound /
	// FunctionIdentifierNotFound, and the variable name for an
	// ExpectedType raised by a type-safe assignment.
	Name string

	// Expected / Actual describe arity or type mismatches. Actual is
	// a free-form rendering (a kind name such as "Float", an operator
	// name, or an argument count) rather than a typed payload, since
	// the offending value may come from any of the six Value kinds.
	Expected string
	Actual   string

	// Message carries CustomMessage payloads and any other
	// free-text detail not covered by the fields above.
	Message string

	// Wrapped, if set, is the underlying cause (e.g. a function's own
	// error, or the reason a token class didn't match).
	Wrapped error
}

func (e *Error) Error() string {
	prefix := ""
	if e.Pos != (Position{}) {
		prefix = e.Pos.String() + ": "
	}
	switch e.Kind {
	case VariableIdentifierNotFound:
		return fmt.Sprintf("%s%s: variable identifier not found: %q", prefix, e.Kind, e.Name)
	case FunctionIdentifierNotFound:
		return fmt.Sprintf("%s%s: function identifier not found: %q", prefix, e.Kind, e.Name)
	case ExpectedType:
		return fmt.Sprintf("%s%s: expected %s, got %s", prefix, e.Kind, e.Expected, e.Actual)
	case WrongOperatorArgumentAmount, WrongFunctionArgumentAmount:
		return fmt.Sprintf("%s%s: expected %s argument(s), got %s", prefix, e.Kind, e.Expected, e.Actual)
	case CustomMessage:
		return fmt.Sprintf("%s%s", prefix, e.Message)
	default:
		if e.Message != "" {
			return fmt.Sprintf("%s%s: %s", prefix, e.Kind, e.Message)
		}
		if e.Actual != "" {
			return fmt.Sprintf("%s%s: got %s", prefix, e.Kind, e.Actual)
		}
		return fmt.Sprintf("%s%s", prefix, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is allows errors.Is(err, &evalerr.Error{Kind: X}) style comparisons
// by Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds a bare error of the given kind at the given position.
func New(kind Kind, pos Position) *Error {
	return &Error{Kind: kind, Pos: pos}
}

// Newf builds an error with a free-text message.
func Newf(kind Kind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// ExpectedTypeErr builds the common "expected T, got actual" error.
func ExpectedTypeErr(pos Position, expected, actual string) *Error {
	return &Error{Kind: ExpectedType, Pos: pos, Expected: expected, Actual: actual}
}

// ArgumentAmount builds a WrongOperatorArgumentAmount /
// WrongFunctionArgumentAmount error.
func ArgumentAmount(kind Kind, pos Position, expected, actual int) *Error {
	return &Error{Kind: kind, Pos: pos, Expected: fmt.Sprintf("%d", expected), Actual: fmt.Sprintf("%d", actual)}
}

// Custom wraps a function-provided failure message.
func Custom(message string) *Error {
	return &Error{Kind: CustomMessage, Message: message}
}
