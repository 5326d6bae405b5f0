package domain

// Render transforms a persisted link list into renderable links.
//
// The input is expected in the normalized, weight-sorted order produced at
// commit time; output order equals input order with no re-sorting. Rows with
// an empty url or title, disabled rows, and rows that fail resolution are
// dropped silently: rendering always yields a best-effort list, never an
// error.
func Render(rows []LinkEntry) []ResolvedLink {
	links := make([]ResolvedLink, 0, len(rows))

	for _, row := range rows {
		if Absent(row.URL) || Absent(row.Title) {
			continue
		}
		if !row.Enabled {
			continue
		}

		target, err := Resolve(row.URL)
		if err != nil {
			// Persisted rows that no longer classify are skipped rather
			// than failing the whole render.
			continue
		}

		links = append(links, ResolvedLink{Text: row.Title, Target: target})
	}

	return links
}
