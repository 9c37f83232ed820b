package lensmeta

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                            // Drop unknown keys.
	UnknownPassthrough                      // Preserve unknown keys in the output.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrip:
		return "strip"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "strict"
	}
}

// Severity expresses the severity level for issues found while decoding raw
// input.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseSeverity maps "ignore", "warn" and "error" to a Severity. Unknown
// strings map to Error.
func ParseSeverity(s string) Severity {
	switch s {
	case "ignore":
		return Ignore
	case "warn":
		return Warn
	default:
		return Error
	}
}

// Strictness configures enforcement while decoding raw documents.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON/YAML keys).
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	FailFast   bool
}

// DefaultParseOpt returns the options used when none are given.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{Strictness: Strictness{OnDuplicateKey: Error}, MaxDepth: 64}
}
