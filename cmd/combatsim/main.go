package main

import (
	"flag"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"combatsim/internal/batch"
	"combatsim/internal/game"
	"combatsim/internal/routes"
	"combatsim/internal/simconfig"
	"combatsim/pkg/db"
	"combatsim/pkg/duration"
	"combatsim/pkg/fixed"
	"combatsim/pkg/logger"
)

// usage :
// Displays the usage of the simulator. Typically requires a
// configuration file to be able to fetch the configuration variables
// to use during the execution of the server.
func usage() {
	fmt.Println("Usage:")
	fmt.Println("./combatsim -config=[file] for configuration file to use (development/production)")
	fmt.Println("./combatsim -config=[file] -army1=Stalker:10 -army2=Roach:12 -seed=0 -runs=1000")
	fmt.Println("  to simulate fight(s) directly and print a win/loss/draw tally instead of serving HTTP")
}

// parseRoster :
// Parses a roster flag of the form "Archetype:Count,Archetype:Count,..."
// (e.g. "Stalker:10,Archon:1") into the archetype/count pairs
// internal/batch.Runner expects.
//
// Returns an error naming the first token that could not be parsed.
func parseRoster(spec string) ([]batch.RosterSpec, error) {
	roster := make([]batch.RosterSpec, 0)

	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}

		parts := strings.SplitN(token, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid roster entry %q, expected \"Archetype:Count\"", token)
		}

		base, ok := game.BaseFromName(parts[0])
		if !ok {
			return nil, fmt.Errorf("unknown archetype %q", parts[0])
		}

		count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("invalid count in roster entry %q", token)
		}

		roster = append(roster, batch.RosterSpec{Base: base, Count: count})
	}

	return roster, nil
}

// runBatch :
// Simulates `runs` independent fights between the two given rosters and
// prints a win/loss/draw tally and average fight duration. Every run gets
// its own seed, drawn in sequence from a master generator seeded with
// `seed` (see internal/game.Coordinator.RandomizeSeed), so the same `seed`
// reproduces the same sequence of runs; a zero `seed` advances that
// generator once more before the first draw.
func runBatch(army1, army2 string, seed int64, runs int, config simconfig.Config, log logger.Logger) error {
	roster1, err := parseRoster(army1)
	if err != nil {
		return fmt.Errorf("could not parse -army1 (err: %v)", err)
	}
	roster2, err := parseRoster(army2)
	if err != nil {
		return fmt.Errorf("could not parse -army2 (err: %v)", err)
	}

	master := game.NewCoordinator(seed)
	if seed == 0 {
		master.RandomizeSeed()
	}

	jobs := make([]batch.Job, runs)
	for i := 0; i < runs; i++ {
		jobs[i] = batch.Job{
			Seed:  master.RandomizeSeed(),
			Army1: roster1,
			Army2: roster2,
		}
	}

	runner := batch.NewRunner(config.Workers, log)
	results := runner.Run(jobs)

	var team1Wins, team2Wins, draws int
	totalDuration := fixed.Zero

	for _, res := range results {
		switch res.Outcome.Winner {
		case game.WinnerTeam1:
			team1Wins++
		case game.WinnerTeam2:
			team2Wins++
		default: // WinnerNone, WinnerTimeout
			draws++
		}
		totalDuration = totalDuration.Add(res.Outcome.Duration)
	}

	fmt.Printf("Army 1: %s\n", army1)
	fmt.Printf("Army 2: %s\n", army2)
	fmt.Printf("Team 1 wins: %d | Team 2 wins: %d | Draws: %d\n", team1Wins, team2Wins, draws)

	if len(results) > 0 {
		avg := totalDuration.Div(fixed.FromInt(len(results)))
		fmt.Printf("Average fight duration: %ss in-game (%s wall-clock)\n", avg, duration.FromGameSeconds(avg))
	}

	return nil
}

// main :
// Either simulates one or more fights directly and prints a tally (when
// `-army1`/`-army2` are provided), or starts the combat simulator as an
// HTTP server accepting `/simulate` and `/outcomes` requests.
func main() {
	help := flag.Bool("h", false, "Print usage")
	conf := flag.String("config", "", "Configuration file to customize app behavior (development/production)")
	army1 := flag.String("army1", "", "Army 1 roster as Archetype:Count pairs, comma-separated (e.g. Stalker:10)")
	army2 := flag.String("army2", "", "Army 2 roster as Archetype:Count pairs, comma-separated (e.g. Roach:12)")
	seed := flag.Int64("seed", 0, "Master PRNG seed each run draws its own seed from; 0 falls back to the configured default seed")
	runs := flag.Int("runs", 1, "Number of independent fights to simulate when -army1/-army2 are set")

	flag.Parse()

	if *help {
		usage()
		return
	}

	trueConf := ""
	if conf != nil {
		trueConf = *conf
	}
	config := simconfig.Parse(trueConf)

	log := logger.NewStdLogger(config.InstanceID, config.Environment)

	defer func() {
		err := recover()
		if err != nil {
			stack := string(debug.Stack())
			log.Trace(logger.Fatal, "main", fmt.Sprintf("App crashed after error: %v (stack: %s)", err, stack))
		}

		log.Release()
	}()

	if len(*army1) > 0 && len(*army2) > 0 {
		masterSeed := *seed
		if masterSeed == 0 {
			masterSeed = config.DefaultSeed
		}
		if err := runBatch(*army1, *army2, masterSeed, *runs, config, log); err != nil {
			panic(err)
		}
		return
	}

	DB := db.NewPool(log)

	server := routes.NewServer(config.Port, DB, config.Workers, log)

	err := server.Serve()
	if err != nil {
		panic(fmt.Errorf("unexpected error while listening to port %d (err: %v)", config.Port, err))
	}
}
