package apperror

import (
	"errors"
	"io/fs"
	"syscall"
)

// BindReason narrows a bind failure down to what the user can act on.
type BindReason int

const (
	ReasonOther BindReason = iota
	ReasonAddrInUse
	ReasonPermissionDenied
	ReasonAddrUnavailable
)

func (r BindReason) String() string {
	switch r {
	case ReasonAddrInUse:
		return "address already in use"
	case ReasonPermissionDenied:
		return "permission denied"
	case ReasonAddrUnavailable:
		return "address unavailable"
	default:
		return "other"
	}
}

// BindReasonOf classifies the cause of a bind failure. Errors that are not
// bind failures report ReasonOther.
func BindReasonOf(err error) BindReason {
	if !IsKind(err, KindBind) {
		return ReasonOther
	}
	switch {
	case errors.Is(err, syscall.EADDRINUSE):
		return ReasonAddrInUse
	case errors.Is(err, syscall.EACCES), errors.Is(err, fs.ErrPermission):
		return ReasonPermissionDenied
	case errors.Is(err, syscall.EADDRNOTAVAIL), errors.Is(err, syscall.EAFNOSUPPORT):
		return ReasonAddrUnavailable
	default:
		return ReasonOther
	}
}
