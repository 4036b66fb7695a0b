//go:build unit

package matching_test

import (
	"testing"

	"laborlink/internal/domain/matching"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	skillPlumbing  = matching.SkillRef{ID: uuid.New(), Name: "Plumbing"}
	skillCarpentry = matching.SkillRef{ID: uuid.New(), Name: "Carpentry"}
	skillWelding   = matching.SkillRef{ID: uuid.New(), Name: "Welding"}
)

func testJob(coord *matching.Coordinate) matching.JobSpec {
	return matching.JobSpec{
		ID:             uuid.New(),
		Title:          "Fix leaking pipes",
		Location:       "Quezon City",
		Coordinate:     coord,
		MaxDistanceKM:  50,
		BudgetMin:      "500.00",
		BudgetMax:      "1500.00",
		RequiredSkills: []matching.SkillRef{skillPlumbing, skillCarpentry},
	}
}

func testCandidate(coord *matching.Coordinate, maxTravel float64, skills ...uuid.UUID) matching.Candidate {
	return matching.Candidate{
		LaborerID:   uuid.New(),
		UserID:      uuid.New(),
		Coordinate:  coord,
		MaxTravelKM: maxTravel,
		SkillIDs:    skills,
	}
}

func TestFindMatches(t *testing.T) {
	manila := &matching.Coordinate{Latitude: 14.5995, Longitude: 120.9842}

	t.Run("no required skills yields no matches", func(t *testing.T) {
		job := testJob(nil)
		job.RequiredSkills = nil

		got := matching.FindMatches(job, []matching.Candidate{
			testCandidate(nil, 50, skillPlumbing.ID),
		})
		assert.Empty(t, got)
	})

	t.Run("skill filter", func(t *testing.T) {
		job := testJob(nil)
		eligible := testCandidate(nil, 50, skillPlumbing.ID, skillWelding.ID)
		ineligible := testCandidate(nil, 50, skillWelding.ID)

		got := matching.FindMatches(job, []matching.Candidate{eligible, ineligible})
		require.Len(t, got, 1)
		assert.Equal(t, eligible.LaborerID, got[0].LaborerID)
		assert.Equal(t, eligible.UserID, got[0].UserID)
		// Only skills the posting actually requires are retained.
		assert.Equal(t, []uuid.UUID{skillPlumbing.ID}, got[0].MatchedSkillIDs)
	})

	t.Run("no location on job skips the proximity check", func(t *testing.T) {
		job := testJob(nil)
		far := testCandidate(&matching.Coordinate{Latitude: 51.5074, Longitude: -0.1278}, 10, skillPlumbing.ID)

		got := matching.FindMatches(job, []matching.Candidate{far})
		require.Len(t, got, 1)
		assert.Nil(t, got[0].DistanceKM)
	})

	t.Run("candidate within both distance limits", func(t *testing.T) {
		job := testJob(manila)
		near := testCandidate(&matching.Coordinate{Latitude: 14.676, Longitude: 121.0437}, 50, skillPlumbing.ID)

		got := matching.FindMatches(job, []matching.Candidate{near})
		require.Len(t, got, 1)
		require.NotNil(t, got[0].DistanceKM)
		assert.InDelta(t, 10.6, *got[0].DistanceKM, 0.5)
	})

	t.Run("laborer travel limit caps the job radius", func(t *testing.T) {
		job := testJob(manila)
		job.MaxDistanceKM = 100

		// Roughly 55.6km north of the job; within the job's 100km radius but
		// beyond the laborer's own 50km travel limit.
		coord := &matching.Coordinate{Latitude: 15.0995, Longitude: 120.9842}
		capped := testCandidate(coord, 50, skillPlumbing.ID)
		willing := testCandidate(coord, 60, skillPlumbing.ID)

		got := matching.FindMatches(job, []matching.Candidate{capped, willing})
		require.Len(t, got, 1)
		assert.Equal(t, willing.LaborerID, got[0].LaborerID)
		require.NotNil(t, got[0].DistanceKM)
		assert.InDelta(t, 55.6, *got[0].DistanceKM, 0.1)
	})

	t.Run("candidate without location is kept", func(t *testing.T) {
		job := testJob(manila)
		noLocation := testCandidate(nil, 50, skillPlumbing.ID)

		got := matching.FindMatches(job, []matching.Candidate{noLocation})
		require.Len(t, got, 1)
		assert.Nil(t, got[0].DistanceKM)
	})

	t.Run("nearby and unlocated candidates match, wrong skill does not", func(t *testing.T) {
		newYork := &matching.Coordinate{Latitude: 40.7128, Longitude: -74.006}
		job := testJob(newYork)

		uptown := testCandidate(&matching.Coordinate{Latitude: 40.7831, Longitude: -73.9712}, 50, skillPlumbing.ID)
		unlocated := testCandidate(nil, 50, skillCarpentry.ID)
		welder := testCandidate(&matching.Coordinate{Latitude: 40.7831, Longitude: -73.9712}, 50, skillWelding.ID)

		got := matching.FindMatches(job, []matching.Candidate{uptown, unlocated, welder})
		require.Len(t, got, 2)
		require.NotNil(t, got[0].DistanceKM)
		assert.InDelta(t, 8.35, *got[0].DistanceKM, 0.05)
		assert.Equal(t, unlocated.LaborerID, got[1].LaborerID)
		assert.Nil(t, got[1].DistanceKM)
	})

	t.Run("mixed pool", func(t *testing.T) {
		job := testJob(manila)
		near := testCandidate(&matching.Coordinate{Latitude: 14.676, Longitude: 121.0437}, 50, skillPlumbing.ID)
		far := testCandidate(&matching.Coordinate{Latitude: 51.5074, Longitude: -0.1278}, 50, skillPlumbing.ID)
		wrongSkill := testCandidate(&matching.Coordinate{Latitude: 14.676, Longitude: 121.0437}, 50, skillWelding.ID)
		noLocation := testCandidate(nil, 50, skillCarpentry.ID)

		got := matching.FindMatches(job, []matching.Candidate{near, far, wrongSkill, noLocation})

		nearDistance := 10.65
		want := []matching.Match{
			{
				LaborerID:       near.LaborerID,
				UserID:          near.UserID,
				MatchedSkillIDs: []uuid.UUID{skillPlumbing.ID},
				DistanceKM:      &nearDistance,
			},
			{
				LaborerID:       noLocation.LaborerID,
				UserID:          noLocation.UserID,
				MatchedSkillIDs: []uuid.UUID{skillCarpentry.ID},
			},
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 0.5)); diff != "" {
			t.Errorf("FindMatches() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestComposeAlertMessage(t *testing.T) {
	t.Run("with distance", func(t *testing.T) {
		job := testJob(nil)
		d := 5.25
		m := matching.Match{
			MatchedSkillIDs: []uuid.UUID{skillPlumbing.ID},
			DistanceKM:      &d,
		}

		got := matching.ComposeAlertMessage(job, m)
		assert.Equal(t, "New Job Alert: A 'Plumbing' job is available in your area (5.25km away). Budget: $500.00-$1500.00.", got)
	})

	t.Run("without distance falls back to location name", func(t *testing.T) {
		job := testJob(nil)
		m := matching.Match{MatchedSkillIDs: []uuid.UUID{skillPlumbing.ID, skillCarpentry.ID}}

		got := matching.ComposeAlertMessage(job, m)
		assert.Equal(t, "New Job Alert: A 'Plumbing, Carpentry' job is available in Quezon City. Budget: $500.00-$1500.00.", got)
	})

	t.Run("no distance and no location name", func(t *testing.T) {
		job := testJob(nil)
		job.Location = ""
		m := matching.Match{MatchedSkillIDs: []uuid.UUID{skillCarpentry.ID}}

		got := matching.ComposeAlertMessage(job, m)
		assert.Equal(t, "New Job Alert: A 'Carpentry' job is available. Budget: $500.00-$1500.00.", got)
	})

	t.Run("whole-number distance keeps one decimal place", func(t *testing.T) {
		job := testJob(nil)
		d := 12.0
		m := matching.Match{
			MatchedSkillIDs: []uuid.UUID{skillPlumbing.ID},
			DistanceKM:      &d,
		}

		got := matching.ComposeAlertMessage(job, m)
		assert.Contains(t, got, "(12.0km away)")
	})
}

func TestComposeSummaryMessage(t *testing.T) {
	job := testJob(nil)
	got := matching.ComposeSummaryMessage(job, 3)
	assert.Equal(t, "Your job posting 'Fix leaking pipes' has been matched with 3 qualified laborers.", got)
}
