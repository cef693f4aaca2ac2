package data

import (
	"encoding/json"
	"fmt"

	"combatsim/internal/game"
	"combatsim/pkg/db"

	"github.com/google/uuid"
)

// RosterEntry :
// Describes the composition of one side of a simulated fight in terms
// of archetype and count, as persisted alongside the outcome. It is
// deliberately coarser than the full per-unit `game.State` slice: we
// only need enough to reconstruct the matchup for later analysis, not
// to replay the fight tick by tick (the seed already allows that).
type RosterEntry struct {
	Base  game.Base `json:"base"`
	Count int       `json:"count"`
}

// OutcomeRecord :
// The persisted shape of a `game.Outcome`, augmented with the seed and
// starting composition of both armies so a row can be re-simulated or
// audited without any other context.
//
// The `Seed` is the PRNG seed the fight was run with; combined with the
// rosters it fully determines the outcome (see internal/game.Coordinator).
//
// The `Army1`/`Army2` describe the starting composition of each side.
//
// The `Winner` is "team1", "team2", "none" or "timeout".
//
// The `Duration`, `DamageDealtA1` and `DamageDealtA2` are the float64
// projections of the corresponding `fixed.Real` outcome fields.
//
// The `ID` is a freshly generated UUID identifying this row.
type OutcomeRecord struct {
	ID            string         `json:"id"`
	Seed          int64          `json:"seed"`
	Army1         []RosterEntry  `json:"army1"`
	Army2         []RosterEntry  `json:"army2"`
	Winner        string         `json:"winner"`
	Duration      float64        `json:"duration"`
	DamageDealtA1 float64        `json:"damage_dealt_a1"`
	DamageDealtA2 float64        `json:"damage_dealt_a2"`
}

// rosterFromArmy tallies an army's composition by archetype. Counts
// cover the army's full roster, dead or alive: the starting matchup is
// what matters for persistence, not the post-fight state.
func rosterFromArmy(a *game.Army) []RosterEntry {
	counts := make(map[game.Base]int)
	for _, u := range a.Units {
		counts[u.Base]++
	}

	roster := make([]RosterEntry, 0, len(counts))
	for base, count := range counts {
		roster = append(roster, RosterEntry{Base: base, Count: count})
	}

	return roster
}

// winnerString renders a `game.Winner` the way this proxy persists it.
func winnerString(w game.Winner) string {
	switch w {
	case game.WinnerTeam1:
		return "team1"
	case game.WinnerTeam2:
		return "team2"
	case game.WinnerTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// NewOutcomeRecord builds the persisted representation of a simulated
// fight from the coordinator's two armies (for their starting rosters)
// and the `game.Outcome` it produced.
func NewOutcomeRecord(a1, a2 *game.Army, seed int64, outcome game.Outcome) OutcomeRecord {
	return OutcomeRecord{
		ID:            uuid.New().String(),
		Seed:          seed,
		Army1:         rosterFromArmy(a1),
		Army2:         rosterFromArmy(a2),
		Winner:        winnerString(outcome.Winner),
		Duration:      outcome.Duration.Float64(),
		DamageDealtA1: outcome.DamageDealtA1.Float64(),
		DamageDealtA2: outcome.DamageDealtA2.Float64(),
	}
}

// The archive is a single table; rosters are stored as json documents
// since nothing ever filters on individual archetype counts.
const (
	createOutcomeQuery = `
insert into combat_outcomes
  (id, seed, army1, army2, winner, duration, damage_dealt_a1, damage_dealt_a2)
values
  ($1, $2, $3, $4, $5, $6, $7, $8)`

	fetchOutcomesQuery = `
select
  id, seed, army1, army2, winner, duration, damage_dealt_a1, damage_dealt_a2
from
  combat_outcomes
where
  seed = $1`
)

// OutcomesProxy :
// The persistence facet for simulated combat outcomes. The combat
// engine itself (internal/game) never imports this package: it only
// produces the `game.Outcome` values this proxy archives.
type OutcomesProxy struct {
	dbase *db.DB
}

// NewOutcomesProxy creates an `OutcomesProxy` writing to the provided
// outcome archive.
func NewOutcomesProxy(dbase *db.DB) OutcomesProxy {
	return OutcomesProxy{
		dbase: dbase,
	}
}

// Create persists a single outcome record.
func (p OutcomesProxy) Create(rec OutcomeRecord) error {
	army1, err := json.Marshal(rec.Army1)
	if err != nil {
		return fmt.Errorf("could not marshal army 1 roster for seed %d (err: %v)", rec.Seed, err)
	}
	army2, err := json.Marshal(rec.Army2)
	if err != nil {
		return fmt.Errorf("could not marshal army 2 roster for seed %d (err: %v)", rec.Seed, err)
	}

	_, err = p.dbase.DBExecute(
		createOutcomeQuery,
		rec.ID,
		rec.Seed,
		army1,
		army2,
		rec.Winner,
		rec.Duration,
		rec.DamageDealtA1,
		rec.DamageDealtA2,
	)

	return err
}

// FetchBySeed retrieves every outcome previously persisted for the
// given seed. Several rows can share a seed if distinct roster
// compositions were simulated against it.
func (p OutcomesProxy) FetchBySeed(seed int64) ([]OutcomeRecord, error) {
	rows, err := p.dbase.DBQuery(fetchOutcomesQuery, seed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]OutcomeRecord, 0)

	for rows.Next() {
		var rec OutcomeRecord
		var army1Raw, army2Raw []byte

		err := rows.Scan(
			&rec.ID,
			&rec.Seed,
			&army1Raw,
			&army2Raw,
			&rec.Winner,
			&rec.Duration,
			&rec.DamageDealtA1,
			&rec.DamageDealtA2,
		)
		if err != nil {
			return records, err
		}

		if err := json.Unmarshal(army1Raw, &rec.Army1); err != nil {
			return records, err
		}
		if err := json.Unmarshal(army2Raw, &rec.Army2); err != nil {
			return records, err
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}
