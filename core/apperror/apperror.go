package apperror

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Kind identifies which failure an Error represents.
type Kind int

const (
	KindPortAllocation Kind = iota + 1
	KindPathResolution
	KindParse
	KindBind
	KindConfigFile
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPortAllocation:
		return "port allocation"
	case KindPathResolution:
		return "path resolution"
	case KindParse:
		return "parse"
	case KindBind:
		return "bind"
	case KindConfigFile:
		return "config file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a classified bootstrap failure.
type Error struct {
	// Kind is the failure category.
	Kind Kind
	// Context names what was being processed (a path, an address string).
	// It is empty for kinds that only carry a cause.
	Context string
	// Cause is the underlying error.
	Cause error
}

func (e *Error) Error() string {
	var head string
	switch e.Kind {
	case KindPortAllocation:
		head = "No free local port available"
	case KindPathResolution:
		head = fmt.Sprintf("Failed to resolve path to be served: %s", e.Context)
	case KindParse:
		head = fmt.Sprintf("Failed to parse %s", e.Context)
	case KindBind:
		head = "Failed to bind server"
	case KindConfigFile:
		head = fmt.Sprintf("Failed to read configuration file %s", e.Context)
	default:
		head = e.Kind.String()
	}
	if e.Cause == nil {
		return head
	}
	return head + "\ncaused by: " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PortAllocation reports that no free local port could be obtained.
func PortAllocation(cause error) *Error {
	return &Error{Kind: KindPortAllocation, Cause: cause}
}

// PathResolution reports that path could not be canonicalized into an
// existing directory.
func PathResolution(path string, cause error) *Error {
	return &Error{Kind: KindPathResolution, Context: path, Cause: cause}
}

// Parse reports that input failed to parse.
func Parse(input string, cause error) *Error {
	return &Error{Kind: KindParse, Context: input, Cause: cause}
}

// Bind reports an OS level bind failure.
func Bind(cause error) *Error {
	return &Error{Kind: KindBind, Cause: cause}
}

// ConfigFile reports a failure reading a configuration file.
func ConfigFile(file string, cause error) *Error {
	return &Error{Kind: KindConfigFile, Context: file, Cause: cause}
}

// IsKind reports whether err, or anything it wraps, is an Error of kind k.
func IsKind(err error, k Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == k
	}
	return false
}

// LogChain logs every line of the error chain as its own entry.
func LogChain(l *zap.Logger, err error) {
	if err == nil {
		return
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			l.Error(line)
		}
	}
}
