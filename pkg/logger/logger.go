package logger

// Logger :
// Logging contract shared by every module of the combat simulator, from
// the batch workers churning through fights to the HTTP surface and the
// outcome archive. A single Trace method keeps call sites uniform no
// matter which module emits the message.
//
// The `Trace` logs a message for the given module with the specified
// severity.
//
// The `Release` flushes whatever the implementation buffers; meant to
// be deferred by the process' entry point so the last traces of a run
// are not lost on exit.
type Logger interface {
	Trace(level Severity, module string, message string)
	Release()
}
