package roadmap

import (
	"fmt"
	"math"
)

// Time estimation constants.
const (
	// DefaultWeeklyHours is the assumed weekly study capacity.
	DefaultWeeklyHours = 8
	// BufferPercent pads the total for friction and overlap.
	BufferPercent = 10
	// ParallelEfficiency discounts calendar time when a phase has
	// enough steps to overlap some of them.
	ParallelEfficiency = 0.85
)

// applyTimeEstimates fills in per-step hour defaults, per-phase
// totals and time frames, and the overall buffered estimate.
func applyTimeEstimates(phases []Phase, weeklyHours int, source string) Roadmap {
	if weeklyHours < 1 {
		weeklyHours = DefaultWeeklyHours
	}

	total := 0
	for i := range phases {
		phase := &phases[i]

		phaseHours := 0
		for j := range phase.Steps {
			if phase.Steps[j].EstHours <= 0 {
				phase.Steps[j].EstHours = EstimateSkillHours(phase.Steps[j].SkillID)
			}
			phaseHours += phase.Steps[j].EstHours
		}

		weeks := ceilDiv(phaseHours, weeklyHours)
		frame := fmt.Sprintf("Estimated time: %d hours (~%d week%s at %d hrs/week)",
			phaseHours, weeks, plural(weeks), weeklyHours)

		if len(phase.Steps) > 2 {
			effective := int(float64(phaseHours) * ParallelEfficiency)
			effectiveWeeks := ceilDiv(effective, weeklyHours)
			frame += fmt.Sprintf(". Some foundational steps can overlap; effective calendar time may be %dh (~%d week%s)",
				effective, effectiveWeeks, plural(effectiveWeeks))
		}

		phase.TotalHours = phaseHours
		phase.TimeFrame = frame
		total += phaseHours
	}

	buffered := int(float64(total) * (1 + float64(BufferPercent)/100))
	bufferedWeeks := ceilDiv(buffered, weeklyHours)

	return Roadmap{
		Phases:        phases,
		TotalHours:    total,
		BufferedHours: buffered,
		TimeFrame: fmt.Sprintf("Total: %dh (+%d%% buffer %dh) ≈ %d weeks at %dh/week",
			total, BufferPercent, buffered, bufferedWeeks, weeklyHours),
		WeeklyHours: weeklyHours,
		Source:      source,
	}
}

func ceilDiv(hours, weekly int) int {
	return int(math.Ceil(float64(hours) / float64(weekly)))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
