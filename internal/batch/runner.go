package batch

import (
	"fmt"
	"sync"
	"time"

	"combatsim/internal/data"
	"combatsim/internal/game"
	"combatsim/pkg/background"
	"combatsim/pkg/duration"
	"combatsim/pkg/logger"

	"github.com/google/uuid"
)

// RosterSpec describes one archetype and how many copies of it should be
// added to an army before a batch job is simulated.
type RosterSpec struct {
	Base  game.Base
	Count int
}

// Job describes one independent fight to simulate: a seed and the
// starting roster of each side.
type Job struct {
	Seed  int64
	Army1 []RosterSpec
	Army2 []RosterSpec
}

// Result pairs a Job with the Outcome it produced, or the error that
// prevented producing one. `Elapsed` is the wall-clock time the worker
// spent on `Simulate`, wrapped so it marshals to a readable string
// rather than a raw nanosecond count when a Result is logged or sent
// back to a caller.
type Result struct {
	Job     Job
	Outcome game.Outcome
	Elapsed duration.Duration
	Err     error
}

func buildArmy(id int, specs []RosterSpec) *game.Army {
	a := game.NewArmy(id)
	for _, s := range specs {
		archetype, ok := game.Archetypes[s.Base]
		if !ok {
			continue
		}
		a.AddUnit(archetype, s.Count)
	}
	return a
}

// Runner fans a batch of independent fight simulations out across a fixed
// pool of worker goroutines, one `game.Coordinator` per goroutine per its
// single-owner concurrency contract (see internal/game.Coordinator's doc
// comment). Every worker drains the same job channel until it is closed,
// the same shape pkg/background.Process uses for its single repeating
// operation, generalized here to N concurrent operations over a queue
// instead of one operation on a timer.
//
// The `Outcomes` proxy is optional; when set, every produced outcome is
// archived as it completes instead of only being returned to the caller.
type Runner struct {
	Workers  int
	Log      logger.Logger
	Outcomes *data.OutcomesProxy
}

// NewRunner builds a Runner with the given worker count (clamped to at
// least 1) and logger.
func NewRunner(workers int, log logger.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		Workers: workers,
		Log:     log,
	}
}

// WithPersistence attaches an OutcomesProxy so every simulated outcome is
// archived as the batch runs. Returns the runner to allow chain calling,
// matching the builder style of pkg/background.Process.
func (r *Runner) WithPersistence(proxy data.OutcomesProxy) *Runner {
	r.Outcomes = &proxy
	return r
}

// Run simulates every job in the batch, fanning out across r.Workers
// goroutines, and returns one Result per job. The order of results is not
// guaranteed to match the order of the input jobs. Every call gets a fresh
// run identifier, logged alongside worker activity so a batch's results can
// be correlated back to the log line that produced them.
func (r *Runner) Run(jobs []Job) []Result {
	runID := uuid.New().String()
	r.Log.Trace(logger.Notice, "batch", fmt.Sprintf("starting run %s with %d job(s) across %d worker(s)", runID, len(jobs), r.Workers))

	in := make(chan Job)
	out := make(chan Result)

	var wg sync.WaitGroup
	wg.Add(r.Workers)
	for w := 0; w < r.Workers; w++ {
		go r.worker(w, in, out, &wg)
	}

	go func() {
		for _, j := range jobs {
			in <- j
		}
		close(in)
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]Result, 0, len(jobs))
	for res := range out {
		results = append(results, res)
	}

	return results
}

// worker drains the job channel until it is closed, recovering from any
// panic raised by a single simulation and reporting it as that job's
// Result.Err, so that one bad job cannot take down the rest of the batch —
// the same recover-at-the-boundary idiom pkg/background.Process uses
// around its operation callback.
func (r *Runner) worker(id int, in <-chan Job, out chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range in {
		res := func() (res Result) {
			defer func() {
				if err := recover(); err != nil {
					r.Log.Trace(logger.Critical, "batch", fmt.Sprintf("worker %d recovered from panic (err: %v)", id, err))
					res = Result{Job: job, Err: fmt.Errorf("simulation for seed %d panicked (err: %v)", job.Seed, err)}
				}
			}()
			return r.simulate(job)
		}()
		out <- res
	}
}

func (r *Runner) simulate(job Job) Result {
	start := time.Now()

	c := game.NewCoordinator(job.Seed)
	c.A1 = buildArmy(1, job.Army1)
	c.A2 = buildArmy(2, job.Army2)

	outcome := c.Simulate()
	elapsed := duration.NewDuration(time.Since(start))

	if r.Outcomes != nil {
		rec := data.NewOutcomeRecord(c.A1, c.A2, job.Seed, outcome)
		if err := r.Outcomes.Create(rec); err != nil {
			r.Log.Trace(logger.Error, "batch", fmt.Sprintf("failed to persist outcome for seed %d (err: %v)", job.Seed, err))
		}
	}

	return Result{Job: job, Outcome: outcome, Elapsed: elapsed}
}

// ScheduledRunner adapts a pkg/background.Process to repeatedly drain a
// job source on a fixed interval, e.g. to periodically resimulate a
// matchmaking queue or a tournament bracket. All of the repeat, retry and
// recover mechanics stay in pkg/background; this type only supplies the
// operation.
type ScheduledRunner struct {
	process *background.Process
}

// NewScheduledRunner builds a ScheduledRunner that, on every tick of
// `interval`, calls `produce` for the next batch of jobs, runs them
// through `runner`, and passes the results to `consume`. An empty batch
// from `produce` is treated as a successful, idle tick.
func NewScheduledRunner(interval time.Duration, runner *Runner, log logger.Logger, produce func() []Job, consume func([]Result)) *ScheduledRunner {
	operation := func() (bool, error) {
		jobs := produce()
		if len(jobs) == 0 {
			return true, nil
		}

		consume(runner.Run(jobs))
		return true, nil
	}

	process := background.NewProcess(interval, log).
		WithModule("batch").
		WithOperation(operation)

	return &ScheduledRunner{process: process}
}

// Start begins the scheduled loop.
func (s *ScheduledRunner) Start() error {
	return s.process.Start()
}

// Stop terminates the scheduled loop and waits for the in-flight tick (if
// any) to finish.
func (s *ScheduledRunner) Stop() {
	s.process.Stop()
}
