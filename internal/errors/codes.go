package errors

// Error codes for the source file generator.
// These codes identify failure classes consistently across diagnostics
// and tests.
//
// Error code ranges:
// E0100-E0199: Structural misuse (composition-layer programming errors)
// E0200-E0299: Registration and binding conflicts
// E0300-E0399: Variable conflicts during parameter-flow analysis
// E0400-E0499: Extraction capability gaps
// W0001-W0099: Warnings

const (
	// E0100: Reading code or dependencies from an expression before it
	// has been composed.
	ErrorUnboundExpression = "E0100"

	// E0101: Accessing children or code of a deferred node before it
	// has been expanded.
	ErrorDeferredAccess = "E0101"

	// E0102: Expanding a deferred node outside of a scope traversal.
	ErrorDeferredOutsideSequence = "E0102"

	// E0103: Composing an expression from an object with no resolvable type.
	ErrorUntypedComposition = "E0103"

	// E0104: Malformed switch construction (default case not last,
	// duplicate default).
	ErrorMalformedSwitch = "E0104"

	// E0105: Binding syntax to an expression that is already bound.
	ErrorExpressionRebound = "E0105"

	// E0200: Duplicate function, class, or kernel namespace name at
	// registration time.
	ErrorDuplicateName = "E0200"

	// E0201: Re-binding a class member that is already bound.
	ErrorMemberRebound = "E0201"

	// E0202: Duplicate member variable name within a class.
	ErrorDuplicateMember = "E0202"

	// E0300: Two variables share a name but have incompatible types.
	ErrorVariableTypeConflict = "E0300"

	// E0400: A live shape or stride symbol has no obtainable extraction
	// expression.
	ErrorExtractionUnavailable = "E0400"

	// W0001: Two same-named variables differ only in const qualification.
	WarningConstMismatch = "W0001"

	// W0002: Two distinct same-named, same-typed variables were merged.
	WarningAmbiguousVariable = "W0002"
)

// Describe returns a human-readable description of an error code.
func Describe(code string) string {
	switch code {
	case ErrorUnboundExpression:
		return "Expression was read before any syntax was bound to it"
	case ErrorDeferredAccess:
		return "Deferred node was accessed before expansion"
	case ErrorDeferredOutsideSequence:
		return "Deferred nodes may only be expanded inside a sequence"
	case ErrorUntypedComposition:
		return "Object carries no resolvable type and cannot enter an expression"
	case ErrorMalformedSwitch:
		return "Switch default case must be unique and listed last"
	case ErrorExpressionRebound:
		return "Expression already has syntax bound to it"
	case ErrorDuplicateName:
		return "A function, class, or kernel namespace with this name already exists"
	case ErrorMemberRebound:
		return "Class member is already bound to a class"
	case ErrorDuplicateMember:
		return "Duplicate member variable name in class"
	case ErrorVariableTypeConflict:
		return "Variables with the same name have incompatible types"
	case ErrorExtractionUnavailable:
		return "Extraction capability cannot supply a required expression"
	case WarningConstMismatch:
		return "Same-named variables differ only in constness"
	case WarningAmbiguousVariable:
		return "Two non-identical variables share name and type"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the code represents a warning rather than an error.
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// Category returns the failure class of an error code.
func Category(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Structural Misuse"
	case code >= "E0200" && code < "E0300":
		return "Registration"
	case code >= "E0300" && code < "E0400":
		return "Variable Conflict"
	case code >= "E0400" && code < "E0500":
		return "Extraction"
	case len(code) > 0 && code[0] == 'W':
		return "Warning"
	default:
		return "Unknown"
	}
}
