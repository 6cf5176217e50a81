package util

var (
	ErrNotFound  = NewError("not found")
	ErrWrongType = NewError("wrong type")
)
