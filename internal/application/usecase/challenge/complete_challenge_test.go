package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-copilot/backend/internal/domain/entity"
	domainerror "github.com/finance-copilot/backend/internal/domain/error"
)

type fakeChallengeRepo struct {
	challenges map[uuid.UUID]*entity.Challenge
	updates    int
	updateErr  error
}

func newFakeChallengeRepo(challenges ...*entity.Challenge) *fakeChallengeRepo {
	repo := &fakeChallengeRepo{challenges: make(map[uuid.UUID]*entity.Challenge)}
	for _, c := range challenges {
		repo.challenges[c.ID] = c
	}
	return repo
}

func (f *fakeChallengeRepo) Create(_ context.Context, challenge *entity.Challenge) error {
	f.challenges[challenge.ID] = challenge
	return nil
}

func (f *fakeChallengeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Challenge, error) {
	challenge, ok := f.challenges[id]
	if !ok {
		return nil, domainerror.ErrChallengeNotFound
	}
	return challenge, nil
}

func (f *fakeChallengeRepo) FindActiveByUserID(_ context.Context, userID string) ([]*entity.Challenge, error) {
	var active []*entity.Challenge
	for _, c := range f.challenges {
		if c.UserID == userID && c.Status == entity.ChallengeStatusActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (f *fakeChallengeRepo) Update(_ context.Context, challenge *entity.Challenge) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.challenges[challenge.ID] = challenge
	return nil
}

type fakePointsLedger struct {
	totals map[string]int64
	awards int
}

func newFakePointsLedger() *fakePointsLedger {
	return &fakePointsLedger{totals: make(map[string]int64)}
}

func (f *fakePointsLedger) Award(_ context.Context, userID string, points int64) (int64, error) {
	f.totals[userID] += points
	f.awards++
	return f.totals[userID], nil
}

func (f *fakePointsLedger) Total(_ context.Context, userID string) (int64, error) {
	return f.totals[userID], nil
}

func (f *fakePointsLedger) Initialize(_ context.Context, userID string, points int64) error {
	if _, ok := f.totals[userID]; !ok {
		f.totals[userID] = points
	}
	return nil
}

func activeChallenge(userID string) *entity.Challenge {
	target := decimal.NewFromInt(25)
	challenge := entity.NewChallenge(userID, "Coffee Break Challenge", "Skip buying coffee for a week and save $25", &target, 5, "coffee", 50)
	challenge.CurrentDays = 3
	return challenge
}

func TestCompleteChallengeUseCase_Execute(t *testing.T) {
	userID := entity.DemoUserID
	endedAt := time.Date(2024, time.April, 20, 9, 30, 0, 0, time.UTC)

	t.Run("completes an active challenge and awards points", func(t *testing.T) {
		stored := activeChallenge(userID)
		repo := newFakeChallengeRepo(stored)
		ledger := newFakePointsLedger()
		ledger.totals[userID] = 1250
		uc := NewCompleteChallengeUseCase(repo, ledger).WithClock(func() time.Time { return endedAt })

		output, err := uc.Execute(context.Background(), CompleteChallengeInput{ChallengeID: stored.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Challenge.Status != entity.ChallengeStatusCompleted {
			t.Errorf("expected Completed status, got %s", output.Challenge.Status)
		}
		if output.Challenge.CurrentDays != 0 {
			t.Errorf("expected day counter reset, got %d", output.Challenge.CurrentDays)
		}
		if output.Challenge.EndDate == nil || !output.Challenge.EndDate.Equal(endedAt) {
			t.Errorf("expected end date %v, got %v", endedAt, output.Challenge.EndDate)
		}
		if output.TotalPoints != 1350 {
			t.Errorf("expected total 1350 after the flat award, got %d", output.TotalPoints)
		}
		if repo.updates != 1 {
			t.Errorf("expected one persisted update, got %d", repo.updates)
		}
	})

	t.Run("second completion is a no-op without a second award", func(t *testing.T) {
		stored := activeChallenge(userID)
		repo := newFakeChallengeRepo(stored)
		ledger := newFakePointsLedger()
		ledger.totals[userID] = 1250
		uc := NewCompleteChallengeUseCase(repo, ledger).WithClock(func() time.Time { return endedAt })

		input := CompleteChallengeInput{ChallengeID: stored.ID, UserID: userID}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error on first completion: %v", err)
		}

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error on second completion: %v", err)
		}

		if ledger.awards != 1 {
			t.Errorf("expected exactly one award, got %d", ledger.awards)
		}
		if output.TotalPoints != 1350 {
			t.Errorf("expected unchanged total 1350, got %d", output.TotalPoints)
		}
		if repo.updates != 1 {
			t.Errorf("expected no second persisted update, got %d", repo.updates)
		}
	})

	t.Run("returns a coded error for an unknown challenge", func(t *testing.T) {
		uc := NewCompleteChallengeUseCase(newFakeChallengeRepo(), newFakePointsLedger())

		_, err := uc.Execute(context.Background(), CompleteChallengeInput{ChallengeID: uuid.New(), UserID: userID})

		if !errors.Is(err, domainerror.ErrChallengeNotFound) {
			t.Errorf("expected ErrChallengeNotFound, got %v", err)
		}
		var challengeErr *domainerror.ChallengeError
		if !errors.As(err, &challengeErr) {
			t.Fatalf("expected a ChallengeError, got %T", err)
		}
		if challengeErr.Code != domainerror.ErrCodeChallengeNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeChallengeNotFound, challengeErr.Code)
		}
	})

	t.Run("keeps the completion when the award fails", func(t *testing.T) {
		stored := activeChallenge(userID)
		repo := newFakeChallengeRepo(stored)
		uc := NewCompleteChallengeUseCase(repo, failingLedger{}).WithClock(func() time.Time { return endedAt })

		output, err := uc.Execute(context.Background(), CompleteChallengeInput{ChallengeID: stored.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Challenge.Status != entity.ChallengeStatusCompleted {
			t.Errorf("expected Completed status despite ledger failure, got %s", output.Challenge.Status)
		}
		if output.TotalPoints != 0 {
			t.Errorf("expected degraded total 0, got %d", output.TotalPoints)
		}
	})
}

type failingLedger struct{}

func (failingLedger) Award(context.Context, string, int64) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingLedger) Total(context.Context, string) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingLedger) Initialize(context.Context, string, int64) error {
	return errors.New("connection refused")
}

func TestCreateChallengeUseCase_Execute(t *testing.T) {
	t.Run("creates an active challenge", func(t *testing.T) {
		repo := newFakeChallengeRepo()
		uc := NewCreateChallengeUseCase(repo)
		target := decimal.NewFromInt(60)

		output, err := uc.Execute(context.Background(), CreateChallengeInput{
			UserID:       entity.DemoUserID,
			Title:        "No Takeout Week",
			Description:  "Cook every meal at home",
			TargetAmount: &target,
			TargetDays:   7,
			Category:     "dining",
			Points:       75,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Challenge.Status != entity.ChallengeStatusActive {
			t.Errorf("expected Active status, got %s", output.Challenge.Status)
		}
		if output.Challenge.CurrentDays != 0 || !output.Challenge.CurrentAmount.IsZero() {
			t.Errorf("expected zero progress, got days=%d amount=%s", output.Challenge.CurrentDays, output.Challenge.CurrentAmount)
		}
		if _, ok := repo.challenges[output.Challenge.ID]; !ok {
			t.Error("expected the challenge to be persisted")
		}
	})

	t.Run("rejects a non-positive duration", func(t *testing.T) {
		uc := NewCreateChallengeUseCase(newFakeChallengeRepo())

		_, err := uc.Execute(context.Background(), CreateChallengeInput{
			UserID:     entity.DemoUserID,
			Title:      "Broken",
			TargetDays: 0,
		})

		var challengeErr *domainerror.ChallengeError
		if !errors.As(err, &challengeErr) {
			t.Fatalf("expected a ChallengeError, got %v", err)
		}
		if challengeErr.Code != domainerror.ErrCodeInvalidTargetDays {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTargetDays, challengeErr.Code)
		}
	})
}
