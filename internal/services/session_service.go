package services

import (
	"context"
	"math"
	"strings"
	"time"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

// SessionAggregate is the grouped view of a session list. Skipped counts
// sessions whose timestamps could not be parsed.
type SessionAggregate struct {
	Groups  []models.SessionGroup `json:"groups"`
	Skipped int                   `json:"skipped"`
}

type sessionKey struct {
	driverID string
	cab      string
	day      string
}

// AggregateSessions groups sessions by (driver, cab, UTC login day) and sums
// their whole-minute durations. Open sessions are measured against now, so
// the result changes if recomputed later. Negative durations (logout before
// login) are summed as-is. Groups keep first-seen order.
func AggregateSessions(sessions []models.Session, now time.Time) SessionAggregate {
	out := SessionAggregate{Groups: []models.SessionGroup{}}
	index := map[sessionKey]int{}

	for _, s := range sessions {
		login, err := utils.ParseTimestamp(s.LoginTime)
		if err != nil {
			out.Skipped++
			continue
		}
		end := now
		if strings.TrimSpace(s.LogoutTime) != "" {
			end, err = utils.ParseTimestamp(s.LogoutTime)
			if err != nil {
				out.Skipped++
				continue
			}
		}

		cab := s.CabNumber
		if cab == "" {
			cab = domain.Placeholder
		}
		day := utils.DayUTC(login)
		minutes := floorMinutes(end.Sub(login))

		key := sessionKey{driverID: s.DriverID.String(), cab: cab, day: day}
		if i, ok := index[key]; ok {
			out.Groups[i].TotalMinutes += minutes
			out.Groups[i].SessionCount++
			continue
		}
		index[key] = len(out.Groups)
		out.Groups = append(out.Groups, models.SessionGroup{
			DriverID:     s.DriverID,
			CabNumber:    cab,
			Day:          day,
			TotalMinutes: minutes,
			SessionCount: 1,
		})
	}
	return out
}

func floorMinutes(d time.Duration) int64 {
	return int64(math.Floor(float64(d) / float64(time.Minute)))
}

type SessionService struct {
	Repo repositories.SessionRepository
	Now  func() time.Time
}

func (s SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Groups fetches sessions, aggregates them and applies the search query.
func (s SessionService) Groups(ctx context.Context, query string) (SessionAggregate, error) {
	sessions, err := s.Repo.List(ctx)
	if err != nil {
		return SessionAggregate{}, err
	}
	agg := AggregateSessions(sessions, s.now())
	agg.Groups = Filter(agg.Groups, query, SessionGroupSearchFields)
	return agg, nil
}
