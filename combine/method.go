package combine

import "fmt"

// Method selects how out-of-bag and whole-sample scores are combined.
type Method int

const (
	// MethodOOB uses the out-of-bag score only.
	MethodOOB Method = iota
	// Method632 uses the fixed .632 weighting.
	Method632
	// Method632Plus uses the overfitting-adjusted .632+ weighting.
	Method632Plus
)

// ParseMethod parses "oob", ".632" or ".632+". The spelled-out forms
// "point632" and "point632plus" are accepted too.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "oob":
		return MethodOOB, nil
	case ".632", "point632":
		return Method632, nil
	case ".632+", "point632plus":
		return Method632Plus, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case MethodOOB:
		return "oob"
	case Method632:
		return ".632"
	case Method632Plus:
		return ".632+"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	return m >= MethodOOB && m <= Method632Plus
}

// NeedsTrainScore reports whether the method uses the whole-sample score.
func (m Method) NeedsTrainScore() bool {
	return m == Method632 || m == Method632Plus
}

// NeedsNoInformation reports whether the method uses the no-information rate.
func (m Method) NeedsNoInformation() bool {
	return m == Method632Plus
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
