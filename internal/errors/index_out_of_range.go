package errors

var ErrIndexOutOfRange = &Exception{
	Message: "task index out of range",
	Kind:    KindBounds,
}
