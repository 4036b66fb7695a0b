package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FindMatches selects the candidates eligible for notification about a
// posting.
//
// Selection runs in two passes. First the skill filter: a candidate survives
// only if it shares at least one skill with the posting's required set; the
// shared skill ids are retained. Then the location filter, applied only when
// the posting itself has a coordinate: a candidate with a coordinate is kept
// iff its distance to the job is within min(job max distance, laborer max
// travel distance), while a candidate without a coordinate is kept
// unconditionally (laborers who never set a location are not excluded).
//
// An empty required-skill set yields no matches.
func FindMatches(job JobSpec, candidates []Candidate) []Match {
	if len(job.RequiredSkills) == 0 {
		return nil
	}

	required := make(map[uuid.UUID]struct{}, len(job.RequiredSkills))
	for _, s := range job.RequiredSkills {
		required[s.ID] = struct{}{}
	}

	var matches []Match
	for _, c := range candidates {
		matched := intersectSkills(required, c.SkillIDs)
		if len(matched) == 0 {
			continue
		}

		m := Match{
			LaborerID:       c.LaborerID,
			UserID:          c.UserID,
			MatchedSkillIDs: matched,
		}

		if job.Coordinate != nil {
			if c.Coordinate != nil {
				maxKM := math.Min(job.MaxDistanceKM, c.MaxTravelKM)
				d := Distance(job.Coordinate, c.Coordinate)
				if d > maxKM {
					continue
				}
				rounded := math.Round(d*100) / 100
				m.DistanceKM = &rounded
			}
			// No preferred location: keep without a distance.
		}

		matches = append(matches, m)
	}

	return matches
}

func intersectSkills(required map[uuid.UUID]struct{}, skillIDs []uuid.UUID) []uuid.UUID {
	var matched []uuid.UUID
	for _, id := range skillIDs {
		if _, ok := required[id]; ok {
			matched = append(matched, id)
		}
	}
	return matched
}

// ComposeAlertMessage builds the notification text for a matched laborer.
// Skill names are resolved against the posting's required set rather than the
// laborer's own records, so only posting-relevant names appear.
func ComposeAlertMessage(job JobSpec, m Match) string {
	matched := make(map[uuid.UUID]struct{}, len(m.MatchedSkillIDs))
	for _, id := range m.MatchedSkillIDs {
		matched[id] = struct{}{}
	}

	var names []string
	for _, s := range job.RequiredSkills {
		if _, ok := matched[s.ID]; ok {
			names = append(names, s.Name)
		}
	}

	var locationText string
	switch {
	case m.DistanceKM != nil:
		locationText = fmt.Sprintf(" in your area (%skm away)", formatDistance(*m.DistanceKM))
	case job.Location != "":
		locationText = fmt.Sprintf(" in %s", job.Location)
	}

	skillText := strings.Join(names, ", ")
	budgetText := fmt.Sprintf("Budget: $%s-$%s", job.BudgetMin, job.BudgetMax)

	return fmt.Sprintf("New Job Alert: A '%s' job is available%s. %s.", skillText, locationText, budgetText)
}

// formatDistance renders a rounded distance for the alert text. Integral
// values keep one decimal place ("12.0"), fractional ones drop trailing
// zeros ("5.25").
func formatDistance(d float64) string {
	if d == math.Trunc(d) {
		return strconv.FormatFloat(d, 'f', 1, 64)
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// ComposeSummaryMessage builds the employer-facing summary created after a
// matching pass that produced at least one alert.
func ComposeSummaryMessage(job JobSpec, matchedCount int) string {
	return fmt.Sprintf("Your job posting '%s' has been matched with %d qualified laborers.", job.Title, matchedCount)
}
