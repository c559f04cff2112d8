package match

import (
	"sort"

	"rollcall/pkg/rollcall/roster"
	"rollcall/pkg/rollcall/sheet"
)

// Thresholds for candidate selection and validity. The floor gates whether a
// candidate counts as a match at all; the other two classify its strength.
const (
	// MatchFloor is the minimum similarity for any match.
	MatchFloor = 0.5
	// HighConfidenceThreshold marks a strong match in the summary.
	HighConfidenceThreshold = 0.80
	// ValidThreshold marks a confirmed match.
	ValidThreshold = 0.90
)

// UnknownID is the matched-identifier placeholder for unmatched rows whose
// own identifier cell was empty.
const UnknownID = "UNKNOWN"

// Reconcile matches each extracted row against the roster snapshot and
// aggregates the reconciliation report. An empty or partial roster is valid
// input; percentages degrade accordingly.
func Reconcile(rows []sheet.Row, snapshot map[string]roster.Identity) *Report {
	// Sorted identifiers make name-search tie-breaking deterministic: the
	// lowest identifier wins among equal-confidence candidates.
	rosterIDs := make([]string, 0, len(snapshot))
	for id := range snapshot {
		rosterIDs = append(rosterIDs, id)
	}
	sort.Strings(rosterIDs)

	report := &Report{
		Results:         make([]Result, 0, len(rows)),
		MatchedIDs:      []string{},
		ExtraNames:      []string{},
		UnmatchedRoster: []string{},
	}
	matched := make(map[string]struct{})

	for i, row := range rows {
		result := reconcileRow(i+1, row, snapshot, rosterIDs)
		if result.Type == TypeNone {
			if result.SheetName != "" {
				report.ExtraNames = append(report.ExtraNames, result.SheetName)
			}
		} else {
			matched[result.MatchedID] = struct{}{}
		}
		report.Results = append(report.Results, result)
	}

	for _, id := range rosterIDs {
		if _, ok := matched[id]; ok {
			report.MatchedIDs = append(report.MatchedIDs, id)
		} else {
			report.UnmatchedRoster = append(report.UnmatchedRoster, id)
		}
	}

	report.Summary = summarize(report.Results, len(report.MatchedIDs), len(rosterIDs))
	return report
}

func reconcileRow(number int, row sheet.Row, snapshot map[string]roster.Identity, rosterIDs []string) Result {
	name := row.Name()
	id := row.EmployeeID()

	directConfidence := 0.0
	directFound := false
	var direct roster.Identity
	if id != "" {
		if candidate, ok := snapshot[id]; ok {
			direct = candidate
			directFound = true
			directConfidence = Similarity(name, candidate.Name)
		}
	}

	bestID, bestName, nameConfidence := "", "", 0.0
	if name != "" {
		for _, rid := range rosterIDs {
			candidate := snapshot[rid]
			if c := Similarity(name, candidate.Name); c > nameConfidence {
				nameConfidence = c
				bestID = rid
				bestName = candidate.Name
			}
		}
	}

	result := Result{
		RowNumber:        number,
		SheetName:        name,
		SheetID:          id,
		SignaturePresent: row.SignaturePresent(),
		Row:              row,
	}

	// The direct-identifier path wins ties against the name search.
	switch {
	case directFound && directConfidence >= nameConfidence && directConfidence > MatchFloor:
		result.MatchedID = id
		result.MatchedName = direct.Name
		result.Confidence = directConfidence
		result.Type = TypeID
	case nameConfidence > MatchFloor:
		result.MatchedID = bestID
		result.MatchedName = bestName
		result.Confidence = nameConfidence
		result.Type = TypeName
	default:
		result.MatchedID = id
		if result.MatchedID == "" {
			result.MatchedID = UnknownID
		}
		result.Confidence = 0
		result.Type = TypeNone
	}

	result.Valid = result.Type != TypeNone && result.Confidence >= ValidThreshold
	return result
}

func summarize(results []Result, matchedCount, rosterCount int) Summary {
	summary := Summary{TotalRows: len(results)}
	for _, r := range results {
		if r.Valid {
			summary.ValidMatches++
		}
		if r.Confidence >= HighConfidenceThreshold {
			summary.HighConfidence++
		}
		switch r.Type {
		case TypeID:
			summary.IDMatches++
		case TypeName:
			summary.NameMatches++
		case TypeNone:
			summary.NoMatches++
		}
	}
	if rosterCount > 0 {
		summary.MatchPercent = float64(matchedCount) / float64(rosterCount) * 100
	}
	return summary
}
