package simconfig

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config :
// Describes the runtime configuration of the combat simulator, parsed
// from a viper-backed configuration file the same way
// pkg/arguments.Parse builds an AppMetadata: a handful of typed fields
// with sane defaults, overridden by whatever the configuration file (or
// environment, through viper's automatic env binding) sets.
//
// The `InstanceID` identifies this particular run of the simulator; it is
// always a freshly generated UUID and no configuration key sets it.
//
// The `Environment` mirrors pkg/arguments.AppMetadata.Environment: a
// label for which configuration file produced these settings.
// The default value is "development".
//
// The `Port` is the TCP port the A5 HTTP surface listens on.
// The default value is 3000.
//
// The `Workers` bounds how many goroutines internal/batch.Runner spawns
// for a batch of fight simulations.
// The default value is 4.
//
// The `SafetyCapTicks` is read from the `Simulation.SafetyCapTicks` key;
// zero means unlimited. No caller copies it onto a Coordinator: the
// coordinators built by internal/batch run with SafetyCap zero.
// The default value is 0 (unlimited).
//
// The `DefaultSeed` is the master seed used by the CLI driver
// (cmd/combatsim) when `-seed` is absent or zero.
// The default value is 0.
type Config struct {
	InstanceID     string
	Environment    string
	Port           int
	Workers        int
	SafetyCapTicks int
	DefaultSeed    int64
}

// Parse mirrors pkg/arguments.Parse: it wires viper to the named
// configuration file (searched in the working directory and in
// data/config), reads it, and overlays any set values onto a default
// Config.
//
// The `configFile` is the name (without extension) of the configuration
// file to load.
//
// Panics if the configuration file cannot be parsed, matching the
// fail-fast behavior of pkg/arguments.Parse and pkg/db.parseConfiguration:
// a combat simulator with a broken configuration should refuse to start
// rather than run with silently wrong settings.
func Parse(configFile string) Config {
	viper.SetEnvPrefix("ENV")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()

	viper.SetConfigName(configFile)
	viper.AddConfigPath(".")
	viper.AddConfigPath("data/config")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("could not parse input configuration \"%s\" (err: %v)", configFile, err))
	}

	config := Config{
		InstanceID:     uuid.New().String(),
		Environment:    "development",
		Port:           3000,
		Workers:        4,
		SafetyCapTicks: 0,
		DefaultSeed:    0,
	}

	if len(configFile) > 0 {
		config.Environment = configFile
	}
	if viper.IsSet("App.Port") {
		config.Port = viper.GetInt("App.Port")
	}
	if viper.IsSet("Simulation.Workers") {
		config.Workers = viper.GetInt("Simulation.Workers")
	}
	if viper.IsSet("Simulation.SafetyCapTicks") {
		config.SafetyCapTicks = viper.GetInt("Simulation.SafetyCapTicks")
	}
	if viper.IsSet("Simulation.DefaultSeed") {
		config.DefaultSeed = viper.GetInt64("Simulation.DefaultSeed")
	}

	return config
}
