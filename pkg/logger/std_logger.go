package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// severityColors holds the ANSI escape prefix used when rendering each
// severity, so a batch of fights scrolling by stays scannable: muted
// colors for routine traces, warm ones for trouble.
var severityColors = map[Severity]string{
	Verbose:  "\033[1;90m",
	Debug:    "\033[1;90m",
	Info:     "\033[1;37m",
	Notice:   "\033[1;36m",
	Warning:  "\033[1;33m",
	Error:    "\033[1;31m",
	Critical: "\033[1;31m",
	Fatal:    "\033[1;35m",
}

const colorReset = "\033[0m"

// StdLogger :
// Writes traces synchronously to standard output, one line per call,
// guarded by a mutex so concurrent batch workers do not interleave
// their lines mid-fight. Each line carries the simulator instance, the
// environment the configuration was loaded for, a timestamp, the
// severity and the emitting module.
//
// The threshold below which traces are dropped can be set through the
// `Logger.Level` configuration key ("verbose" when unset, so a fresh
// checkout logs everything).
type StdLogger struct {
	instanceID  string
	environment string
	threshold   Severity
	lock        sync.Mutex
	out         *os.File
}

// NewStdLogger creates a logger for this simulator run.
//
// The `instanceID` ties together every line of one process: batch runs
// spanning thousands of fights produce a lot of output, and grepping
// for the instance is how a single run is carved back out of it.
//
// The `environment` names the configuration the process started with
// ("development", "production").
func NewStdLogger(instanceID string, environment string) Logger {
	threshold := Verbose
	if viper.IsSet("Logger.Level") {
		threshold = SeverityFromString(viper.GetString("Logger.Level"))
	}

	return &StdLogger{
		instanceID:  instanceID,
		environment: environment,
		threshold:   threshold,
		out:         os.Stdout,
	}
}

// Trace writes one formatted line for the message, unless its level
// falls below the configured threshold.
func (log *StdLogger) Trace(level Severity, module string, message string) {
	if level < log.threshold {
		return
	}

	color, ok := severityColors[level]
	if !ok {
		color = severityColors[Info]
	}

	log.lock.Lock()
	defer log.lock.Unlock()

	stamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(log.out, "[%s] [%s] %s %s%s%s [%s] %s\n",
		log.instanceID,
		log.environment,
		stamp,
		color, level.String(), colorReset,
		module,
		message,
	)
}

// Release is part of the Logger contract. This implementation writes
// synchronously and buffers nothing, so there is nothing to flush; the
// method exists so the entry point can defer it regardless of which
// implementation it was handed.
func (log *StdLogger) Release() {}
