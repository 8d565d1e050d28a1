package services

import (
	"context"
	"math/rand/v2"

	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/observability"
	"github.com/xvierd/mindminute/internal/ports"
)

// CheckinService handles mood check-in use cases. The in-process MoodLog
// is the source of truth; the storage journal only feeds aggregates.
type CheckinService struct {
	log     *domain.MoodLog
	storage ports.Storage
	clock   ports.Clock
	rng     *rand.Rand
}

// NewCheckinService creates a new check-in service. storage may be nil.
func NewCheckinService(storage ports.Storage, clock ports.Clock) *CheckinService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &CheckinService{
		log:     domain.NewMoodLog(),
		storage: storage,
		clock:   clock,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SetRand replaces the source used to pick affirmations.
func (s *CheckinService) SetRand(rng *rand.Rand) {
	if rng != nil {
		s.rng = rng
	}
}

// LogMood records a check-in and returns the updated streak along with an
// affirmation for the mood. Journal failures are logged, never returned.
func (s *CheckinService) LogMood(ctx context.Context, mood domain.Mood) (domain.CheckinResult, error) {
	now := s.clock.Now()
	entry, err := domain.NewMoodEntry(mood, now)
	if err != nil {
		return domain.CheckinResult{}, err
	}

	s.log.Append(entry)

	if s.storage != nil {
		if err := s.storage.Checkins().Save(ctx, entry); err != nil {
			observability.Logger().Warn("journal check-in failed", "id", entry.ID, "error", err)
		}
	}

	affirmations, err := domain.AffirmationsOf(mood)
	if err != nil {
		return domain.CheckinResult{}, err
	}

	result := domain.CheckinResult{
		Entry:       entry,
		Streak:      domain.ComputeStreak(s.log.DistinctDates(), now),
		Affirmation: affirmations[s.rng.IntN(len(affirmations))],
	}

	observability.Logger().Debug("mood logged",
		"mood", mood.Word(),
		"score", entry.Score,
		"streak", result.Streak,
	)

	return result, nil
}

// Streak returns the consecutive-day streak ending today.
func (s *CheckinService) Streak() int {
	return domain.ComputeStreak(s.log.DistinctDates(), s.clock.Now())
}

// History returns every check-in in insertion order.
func (s *CheckinService) History() []domain.MoodEntry {
	return s.log.All()
}

// Scores returns the mood scores in insertion order.
func (s *CheckinService) Scores() []int {
	return s.log.ScoresInOrder()
}

// Last returns the latest check-in, if any.
func (s *CheckinService) Last() (domain.MoodEntry, bool) {
	return s.log.Last()
}
