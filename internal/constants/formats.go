package constants

// Layouts shared by the interpreter, renderings and storage.
const (
	InputDateTimeLayout = "2006-01-02 1504"
	DateLayout          = "2006-01-02"
	DisplayLayout       = "Jan 02 2006 15:04"
	DisplayDateLayout   = "Jan 02 2006"
)
