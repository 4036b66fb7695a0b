//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"laborlink/internal/domain/job"
	"laborlink/internal/domain/matching"
	"laborlink/internal/domain/notification"
	"laborlink/internal/infra"
	"laborlink/internal/pkg/clock"
	"laborlink/internal/pkg/errs"
	"laborlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobMatchStore struct {
	specs map[uuid.UUID]*commands.JobMatchSpec
	err   error
}

func (f *fakeJobMatchStore) FindMatchSpec(_ context.Context, jobID uuid.UUID) (*commands.JobMatchSpec, error) {
	if f.err != nil {
		return nil, f.err
	}
	spec, ok := f.specs[jobID]
	if !ok {
		return nil, infra.WrapRepoErr("job posting not found", nil, infra.KindNotFound)
	}
	return spec, nil
}

type fakeLaborerStore struct {
	candidates []matching.Candidate
	err        error
}

func (f *fakeLaborerStore) FindAvailableCandidates(context.Context) ([]matching.Candidate, error) {
	return f.candidates, f.err
}

type fakeNotificationRepo struct {
	created   []*notification.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) UpdateReadState(context.Context, uuid.UUID, time.Time) error {
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(context.Context, uuid.UUID, time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) byType(kind notification.Type) []*notification.Notification {
	var out []*notification.Notification
	for _, n := range f.created {
		if n.Kind() == kind {
			out = append(out, n)
		}
	}
	return out
}

type fakeDispatcher struct {
	dispatched []uuid.UUID
	err        error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.dispatched = append(f.dispatched, id)
	return nil
}

type matchingFixture struct {
	jobID      uuid.UUID
	employerID uuid.UUID
	skill      matching.SkillRef
	jobs       *fakeJobMatchStore
	laborers   *fakeLaborerStore
	repo       *fakeNotificationRepo
	dispatcher *fakeDispatcher
}

func newMatchingFixture(status job.Status) *matchingFixture {
	jobID := uuid.New()
	skill := matching.SkillRef{ID: uuid.New(), Name: "Plumbing"}
	spec := &commands.JobMatchSpec{
		Job: matching.JobSpec{
			ID:             jobID,
			Title:          "Fix leaking pipes",
			Location:       "Quezon City",
			MaxDistanceKM:  50,
			BudgetMin:      "500.00",
			BudgetMax:      "1500.00",
			RequiredSkills: []matching.SkillRef{skill},
		},
		EmployerUserID: uuid.New(),
		Status:         status,
	}
	return &matchingFixture{
		jobID:      jobID,
		employerID: spec.EmployerUserID,
		skill:      skill,
		jobs:       &fakeJobMatchStore{specs: map[uuid.UUID]*commands.JobMatchSpec{jobID: spec}},
		laborers:   &fakeLaborerStore{},
		repo:       &fakeNotificationRepo{},
		dispatcher: &fakeDispatcher{},
	}
}

func (f *matchingFixture) newCommands() commands.MatchingCommands {
	return commands.NewMatchingCommands(
		f.jobs,
		f.laborers,
		f.repo,
		f.dispatcher,
		clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func candidateWithSkills(skills ...uuid.UUID) matching.Candidate {
	return matching.Candidate{
		LaborerID:   uuid.New(),
		UserID:      uuid.New(),
		MaxTravelKM: 50,
		SkillIDs:    skills,
	}
}

func TestNotifyMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("one alert per match plus an employer summary", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		first := candidateWithSkills(f.skill.ID)
		second := candidateWithSkills(f.skill.ID)
		f.laborers.candidates = []matching.Candidate{first, second}

		require.NoError(t, f.newCommands().NotifyMatches(ctx, f.jobID))

		alerts := f.repo.byType(notification.TypeNewJobPosting)
		require.Len(t, alerts, 2)
		assert.Equal(t, first.UserID, alerts[0].RecipientID())
		assert.Equal(t, second.UserID, alerts[1].RecipientID())
		assert.Contains(t, alerts[0].Message(), "New Job Alert: A 'Plumbing' job is available")

		summaries := f.repo.byType(notification.TypeApplicationStatus)
		require.Len(t, summaries, 1)
		assert.Equal(t, f.employerID, summaries[0].RecipientID())
		assert.Equal(t, "Your job posting 'Fix leaking pipes' has been matched with 2 qualified laborers.", summaries[0].Message())

		// Every created notification is queued for delivery.
		assert.Len(t, f.dispatcher.dispatched, 3)
	})

	t.Run("no matches means no summary", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		f.laborers.candidates = []matching.Candidate{candidateWithSkills(uuid.New())}

		require.NoError(t, f.newCommands().NotifyMatches(ctx, f.jobID))

		assert.Empty(t, f.repo.created)
		assert.Empty(t, f.dispatcher.dispatched)
	})

	t.Run("non-open posting is a no-op", func(t *testing.T) {
		f := newMatchingFixture(job.StatusClosed)
		f.laborers.candidates = []matching.Candidate{candidateWithSkills(f.skill.ID)}

		require.NoError(t, f.newCommands().NotifyMatches(ctx, f.jobID))

		assert.Empty(t, f.repo.created)
	})

	t.Run("posting without required skills is a no-op", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		f.jobs.specs[f.jobID].Job.RequiredSkills = nil
		f.laborers.candidates = []matching.Candidate{candidateWithSkills(f.skill.ID)}

		require.NoError(t, f.newCommands().NotifyMatches(ctx, f.jobID))

		assert.Empty(t, f.repo.created)
	})

	t.Run("unknown posting", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		err := f.newCommands().NotifyMatches(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrJobPostingNotFound))
	})

	t.Run("candidate scan failure", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		f.laborers.err = errors.New("connection refused")

		err := f.newCommands().NotifyMatches(ctx, f.jobID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrCandidateScan))
	})

	t.Run("storage failure on one alert does not abort the batch", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		f.laborers.candidates = []matching.Candidate{candidateWithSkills(f.skill.ID)}
		f.repo.createErr = errors.New("insert failed")

		// All inserts fail, so no alerts and no summary either.
		require.NoError(t, f.newCommands().NotifyMatches(ctx, f.jobID))
		assert.Empty(t, f.repo.created)
		assert.Empty(t, f.dispatcher.dispatched)
	})

	t.Run("full delivery queue does not fail the pass", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		f.laborers.candidates = []matching.Candidate{candidateWithSkills(f.skill.ID)}
		f.dispatcher.err = errors.New("queue is full")

		require.NoError(t, f.newCommands().NotifyMatches(ctx, f.jobID))
		// Notifications are still persisted even when delivery cannot be queued.
		assert.Len(t, f.repo.created, 2)
	})
}

func TestOnJobPostingCreated(t *testing.T) {
	t.Run("swallows matching errors", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		f.jobs.err = errors.New("db down")

		// Must not panic or propagate.
		f.newCommands().OnJobPostingCreated(context.Background(), f.jobID)
	})

	t.Run("runs the full pass", func(t *testing.T) {
		f := newMatchingFixture(job.StatusOpen)
		f.laborers.candidates = []matching.Candidate{candidateWithSkills(f.skill.ID)}

		f.newCommands().OnJobPostingCreated(context.Background(), f.jobID)
		assert.Len(t, f.repo.created, 2)
	})
}
