package usecases

import "time"

// GenerationMode selects how far a run looks ahead and how many candidates
// it produces per (equipment, template) pair.
type GenerationMode string

const (
	// GenerationModeNextOnly emits at most the single next due date,
	// within the coming three months.
	GenerationModeNextOnly GenerationMode = "next_only"
	// GenerationModeAllMissing emits every due date up to 180 days out.
	GenerationModeAllMissing GenerationMode = "all_missing"
)

func (m GenerationMode) IsValid() bool {
	return m == GenerationModeNextOnly || m == GenerationModeAllMissing
}

// HorizonFor returns the cutoff date for the given mode relative to now.
func HorizonFor(mode GenerationMode, now time.Time) time.Time {
	switch mode {
	case GenerationModeAllMissing:
		return now.AddDate(0, 0, 180)
	default:
		return now.AddDate(0, 3, 0)
	}
}

// ProjectDueDates computes candidate due dates for one (equipment, template)
// pair. It steps from the baseline by whole calendar months, never emits the
// baseline itself, and never emits a date at or past the horizon. The caller
// must not invoke it with a non-positive interval.
//
// Month arithmetic follows time.AddDate, so day-of-month overflow at short
// months normalizes forward (Jan 31 + 1 month = Mar 2 or 3).
func ProjectDueDates(baseline time.Time, intervalMonths int, mode GenerationMode, horizon time.Time) []time.Time {
	if intervalMonths <= 0 {
		return nil
	}

	if mode == GenerationModeNextOnly {
		candidate := baseline.AddDate(0, intervalMonths, 0)
		if !candidate.Before(horizon) {
			return nil
		}
		return []time.Time{candidate}
	}

	var candidates []time.Time
	current := baseline
	for {
		current = current.AddDate(0, intervalMonths, 0)
		if !current.Before(horizon) {
			break
		}
		candidates = append(candidates, current)
	}

	return candidates
}
