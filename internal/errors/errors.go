package errors

import (
	"fmt"
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

func Is(err, target error) bool { return errorsGo.Is(err, target) }

// New wraps obj with a stack trace.
// Unlike github.com/go-errors/errors.New() it returns a nil error for nil.
func New(obj any) error {
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Errorf(format string, a ...any) error { return errorsGo.Wrap(fmt.Errorf(format, a...), 1) }

func Wrap(e any, skip int) *errorsGo.Error { return errorsGo.Wrap(e, skip+1) }

// Mark returns an error matching sentinel via Is, with a formatted detail
// message and the stack of the caller.
func Mark(sentinel error, format string, a ...any) error {
	if sentinel == nil {
		return nil
	}
	msg := fmt.Sprintf(format, a...)
	if len(msg) == 0 {
		return errorsGo.Wrap(sentinel, 1)
	}
	return errorsGo.Wrap(fmt.Errorf("%w: %s", sentinel, msg), 1)
}

// MarkWrap is like Mark but additionally keeps cause in the chain.
func MarkWrap(sentinel, cause error, format string, a ...any) error {
	if cause == nil {
		return nil
	}
	msg := fmt.Sprintf(format, a...)
	return errorsGo.Wrap(fmt.Errorf("%w: %s: %w", sentinel, msg, cause), 1)
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(`nil receiver or struct field`, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(`nil parameter`, 3, args...)
}

func errMsgNilTester(msg string, skip int, args ...any) error {
	if len(args) == 0 {
		return errMsg(msg, skip)
	}
	for i := range args {
		if isNil(args[i]) {
			return errMsg(msg, skip)
		}
	}
	return nil
}

func errMsg(msg string, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(msg, skip)
	}
	return Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, skip)
}
