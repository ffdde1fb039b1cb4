package constants

type TaskKind string

const (
	KindToDo     TaskKind = "T"
	KindDeadline TaskKind = "D"
	KindEvent    TaskKind = "E"
)
