package readstore

import (
	"context"

	"laborlink/internal/domain/matching"
	"laborlink/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LaborerReadStore struct {
	db *pgxpool.Pool
}

func NewLaborerReadStore(db *pgxpool.Pool) *LaborerReadStore {
	return &LaborerReadStore{db: db}
}

// FindAvailableCandidates loads every available laborer with its skill ids in
// a single aggregated query. Laborers without any recorded skill still come
// back (empty skill set) and are filtered out by the matcher.
func (s *LaborerReadStore) FindAvailableCandidates(ctx context.Context) ([]matching.Candidate, error) {
	rows, err := s.db.Query(ctx, `
SELECT l.user_id,
       l.preferred_latitude,
       l.preferred_longitude,
       l.max_travel_distance_km,
       COALESCE(array_agg(ls.skill_id) FILTER (WHERE ls.skill_id IS NOT NULL), '{}')
FROM skilled_laborers l
LEFT JOIN laborer_skills ls ON ls.laborer_id = l.user_id
WHERE l.is_available = true
GROUP BY l.user_id, l.preferred_latitude, l.preferred_longitude, l.max_travel_distance_km`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available laborers", err)
	}
	defer rows.Close()

	var candidates []matching.Candidate
	for rows.Next() {
		var (
			userID   uuid.UUID
			lat, lon *float64
			maxKM    int32
			skillIDs []uuid.UUID
		)
		if err := rows.Scan(&userID, &lat, &lon, &maxKM, &skillIDs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan laborer", err)
		}

		candidates = append(candidates, matching.Candidate{
			LaborerID:   userID,
			UserID:      userID,
			Coordinate:  matching.NewCoordinate(lat, lon),
			MaxTravelKM: float64(maxKM),
			SkillIDs:    skillIDs,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read laborers", err)
	}

	return candidates, nil
}
