package roadmap

// MaxGapsToProcess bounds how many skills feed the plan. Missing
// skills get at least 60% of the budget.
const MaxGapsToProcess = 8

// prioritySkills trims the gap lists to the processing budget,
// preferring missing skills over complementary ones.
func prioritySkills(missing, nice []string, max int) ([]string, []string) {
	if len(missing)+len(nice) <= max {
		return missing, nice
	}

	missingQuota := max - len(nice)
	if floor := int(float64(max) * 0.6); floor > missingQuota {
		missingQuota = floor
	}
	if missingQuota > len(missing) {
		missingQuota = len(missing)
	}
	niceQuota := max - missingQuota

	return missing[:missingQuota], nice[:niceQuota]
}
