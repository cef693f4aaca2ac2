// Package background runs recurring maintenance work around the
// simulator without touching the tick loop itself: periodic
// resimulation sweeps, archive upkeep, anything that should fire on an
// interval while the process serves requests.
package background

import (
	"fmt"
	"sync"
	"time"

	"combatsim/pkg/logger"
)

// OperationFunc :
// One unit of recurring work. The boolean reports whether the work
// completed; returning false on a process built WithRetry makes it try
// again on the retry interval instead of waiting for the next regular
// firing.
type OperationFunc func() (bool, error)

// ErrAlreadyRunning : Indicates that this process is already running
// and cannot be started again.
var ErrAlreadyRunning = fmt.Errorf("process is already running")

// ErrInvalidOperation : Indicates that no operation was attached to
// this process before starting it.
var ErrInvalidOperation = fmt.Errorf("cannot start process with no operation")

// Process :
// A task repeating on a fixed interval. The batch layer uses it to
// periodically drain a job source (see internal/batch.ScheduledRunner).
// Every firing is wrapped in a recover, so one bad sweep cannot kill
// the loop: the panic is logged and the process waits for its next
// interval as usual.
type Process struct {
	interval      time.Duration
	retryInterval time.Duration
	retry         bool
	operation     OperationFunc
	module        string
	log           logger.Logger

	lock    sync.Mutex
	running bool
	stop    chan struct{}
	waiter  sync.WaitGroup
}

// NewProcess builds a process firing on the given interval. An
// operation must be attached through WithOperation before Start.
func NewProcess(interval time.Duration, log logger.Logger) *Process {
	return &Process{
		interval:      interval,
		retryInterval: time.Second,
		module:        "process",
		log:           log,
	}
}

// WithModule names the module used when tracing this process' activity.
// Returns the process to allow chain calling.
func (p *Process) WithModule(module string) *Process {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.module = module
	return p
}

// WithRetry makes a failed firing retry on the retry interval instead
// of waiting for the next regular one.
func (p *Process) WithRetry() *Process {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.retry = true
	return p
}

// WithRetryInterval overrides the pause between retries of a failed
// firing.
func (p *Process) WithRetryInterval(interval time.Duration) *Process {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.retryInterval = interval
	return p
}

// WithOperation attaches the work this process repeats.
func (p *Process) WithOperation(operation OperationFunc) *Process {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.operation = operation
	return p
}

// Start launches the repeating loop. Fails if the process is already
// running or has no operation attached.
func (p *Process) Start() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.running {
		return ErrAlreadyRunning
	}
	if p.operation == nil {
		return ErrInvalidOperation
	}

	p.running = true
	p.stop = make(chan struct{})
	p.waiter.Add(1)
	go p.loop(p.stop)

	return nil
}

// Stop terminates the loop and waits for an in-flight firing to finish
// before returning.
func (p *Process) Stop() {
	p.lock.Lock()
	if !p.running {
		p.lock.Unlock()
		return
	}
	p.running = false
	close(p.stop)
	p.lock.Unlock()

	p.waiter.Wait()
}

// loop fires the operation on every tick of the interval until stopped.
func (p *Process) loop(stop <-chan struct{}) {
	defer p.waiter.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.fire(stop)
		}
	}
}

// fire runs the operation once, honoring the retry policy without ever
// outliving a Stop request.
func (p *Process) fire(stop <-chan struct{}) {
	for {
		if p.execute() || !p.retry {
			return
		}

		select {
		case <-stop:
			return
		case <-time.After(p.retryInterval):
		}
	}
}

// execute performs a single firing, converting a panic into a logged
// failure.
func (p *Process) execute() (success bool) {
	defer func() {
		if err := recover(); err != nil {
			p.log.Trace(logger.Critical, p.module, fmt.Sprintf("recovered from panic in background operation (err: %v)", err))
			success = false
		}
	}()

	success, err := p.operation()
	if err != nil {
		p.log.Trace(logger.Error, p.module, fmt.Sprintf("background operation failed (err: %v)", err))
	}

	return success
}
