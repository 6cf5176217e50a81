package util

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Error is a sentinel error which carries a stack once it is used. Sentinels
// are declared with NewError and must be used through Call, Wrap, Wrapf or
// Errorf, never directly.
type Error struct {
	wrapped error
	id      string
	msg     string
	extra   string
	stack
}

func NewError(s string, a ...interface{}) Error {
	var pcs [1]uintptr
	_ = runtime.Callers(2, pcs[:])
	f := errors.Frame(pcs[0])

	return Error{
		id:  fmt.Sprintf("%n:%d", f, f),
		msg: strings.TrimSpace(fmt.Sprintf(s, a...)),
	}
}

func (er Error) Unwrap() error {
	return er.wrapped
}

func (er Error) Is(err error) bool {
	er.checkStack()

	var e Error

	switch i, ok := err.(Error); { //nolint:errorlint //...
	case ok:
		e = i
	case er.wrapped == nil:
		return false
	default:
		return errors.Is(er.wrapped, err)
	}

	return e.id == er.id
}

func (er Error) Call() Error {
	er.stack = callers(3)

	return er
}

func (er Error) Wrap(err error) Error {
	er.stack = callers(3)
	er.wrapped = err

	return er
}

func (er Error) Wrapf(err error, s string, a ...interface{}) Error {
	er.stack = callers(3)
	er.extra = fmt.Sprintf(s, a...)
	er.wrapped = err

	return er
}

// Errorf does not support `%w`; use Wrapf.
func (er Error) Errorf(s string, a ...interface{}) Error {
	er.stack = callers(3)
	er.extra = fmt.Sprintf(s, a...)

	return er
}

func (er Error) Error() string {
	er.checkStack()

	s := er.message()

	if er.wrapped != nil {
		if e := er.wrapped.Error(); len(e) > 0 {
			s += "; " + e
		}
	}

	return s
}

func (er Error) Format(st fmt.State, verb rune) {
	er.checkStack()

	switch verb {
	case 'v':
		if st.Flag('+') {
			_, _ = fmt.Fprintf(st, "> %s", er.message())

			er.stack.Format(st, verb)

			if er.wrapped != nil {
				_, _ = fmt.Fprintf(st, "\n%+v", er.wrapped)
			}

			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(st, er.Error())
	case 'q':
		_, _ = fmt.Fprintf(st, "%q", er.Error())
	}
}

func (er Error) StackTrace() errors.StackTrace {
	if er.stack != nil {
		return er.stack.StackTrace()
	}

	if i, ok := er.wrapped.(stackTracer); ok { //nolint:errorlint //...
		return i.StackTrace()
	}

	return nil
}

func (er Error) checkStack() {
	if er.stack == nil {
		panic(fmt.Errorf("Error, %q should not be used as error directly without Call()", er.msg))
	}
}

func (er Error) message() string {
	if len(er.extra) < 1 {
		return er.msg
	}

	return er.msg + " - " + er.extra
}

// callers comes from
// https://github.com/pkg/errors/blob/856c240a51a2bf8fb8269ea7f3f9b046aadde36e/stack.go#L163
func callers(skip int) stack {
	const depth = 32

	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])

	return stack(pcs[0:n])
}

type stack []uintptr

func (s stack) Format(st fmt.State, verb rune) {
	if verb == 'v' && st.Flag('+') {
		for _, pc := range s {
			_, _ = fmt.Fprintf(st, "\n%+v", errors.Frame(pc))
		}
	}
}

func (s stack) StackTrace() errors.StackTrace {
	f := make([]errors.Frame, len(s))
	for i := range s {
		f[i] = errors.Frame(s[i])
	}

	return f
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// StringError returns a function which wraps errors with the given prefix;
// it is useful to keep the failure context of one function in one place.
func StringError(prefix string, a ...interface{}) func(error, string, ...interface{}) error {
	p := fmt.Sprintf(prefix, a...)

	return func(err error, s string, a ...interface{}) error {
		m := p
		if len(s) > 0 {
			m += "; " + fmt.Sprintf(s, a...)
		}

		if err == nil {
			return errors.New(m)
		}

		return errors.Wrap(err, m)
	}
}
