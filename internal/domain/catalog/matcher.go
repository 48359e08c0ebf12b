package catalog

// Match returns the plan names whose first-seen fingerprint equals fp, in
// catalog order. A plan name appended twice with different fingerprints is
// matched only by its first historical fingerprint: first-write-wins
// identity. The empty fingerprint (nothing to fingerprint) never matches.
func Match(entries []Entry, fp string) []string {
	if fp == "" || len(entries) == 0 {
		return nil
	}

	firstSeen := make(map[string]string, len(entries))
	var order []string
	for _, e := range entries {
		if _, seen := firstSeen[e.PlanName]; seen {
			continue
		}
		firstSeen[e.PlanName] = e.Fingerprint
		order = append(order, e.PlanName)
	}

	var matches []string
	for _, name := range order {
		if firstSeen[name] == fp {
			matches = append(matches, name)
		}
	}
	return matches
}
