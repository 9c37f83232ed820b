package lensmeta

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeTooShort             = "too_short"
	CodeTooLong              = "too_long"
	CodeInvalidFormat        = "invalid_format"
	CodeInvalidLiteral       = "invalid_literal"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidDiscriminator = "invalid_discriminator"
	CodeInvalidUnion         = "invalid_union"
	CodeUnrecognizedKey      = "unrecognized_key"
	CodeCrossField           = "cross_field_violation"
	CodeDuplicateValue       = "duplicate_value"
	CodeParseError           = "parse_error"
	CodeTruncated            = "truncated"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    Path   // Location of the offending value relative to the validated root.
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"min":1, "got":0}) for i18n
	// and observability.
	Params map[string]any
	// Groups holds the issues of every alternative when Code is
	// CodeInvalidUnion. Each group is one alternative, in declaration order.
	Groups []Issues
	Cause  error // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /lens/content
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// WithPrefix returns a copy of the issues rebased under prefix. Grouped
// alternatives are rebased as well so that every path stays absolute with
// respect to the same root.
func (iss Issues) WithPrefix(prefix Path) Issues {
	if len(iss) == 0 || len(prefix) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = prefix.Join(it.Path)
		if len(it.Groups) > 0 {
			groups := make([]Issues, len(it.Groups))
			for g := range it.Groups {
				groups[g] = it.Groups[g].WithPrefix(prefix)
			}
			it.Groups = groups
		}
		out[i] = it
	}
	return out
}

// Codes returns the issue codes in order. Handy in tests and logs.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i := range iss {
		out[i] = iss[i].Code
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ToIssues converts any error into Issues. Errors that do not carry issues are
// reported as a single parse_error at the root.
func ToIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
}

// ValidationError is raised by convenience builders when their input does not
// validate. The message is the formatted issue list.
type ValidationError struct {
	Issues Issues
}

// NewValidationError wraps issues into a ValidationError.
func NewValidationError(iss Issues) *ValidationError { return &ValidationError{Issues: iss} }

func (e *ValidationError) Error() string { return FormatIssues(e.Issues) }

// Unwrap exposes the underlying Issues to errors.As.
func (e *ValidationError) Unwrap() error { return e.Issues }
