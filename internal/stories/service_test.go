package stories

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/models"
)

type fakeStoryRepo struct {
	stories map[string]*models.Story
	nextID  int

	deleteExpiredCalls int
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: map[string]*models.Story{}}
}

func (f *fakeStoryRepo) Create(ctx context.Context, s *models.Story) error {
	f.nextID++
	if s.ID == "" {
		s.ID = "story-" + strconv.Itoa(f.nextID)
	}
	cp := *s
	f.stories[s.ID] = &cp
	return nil
}

func (f *fakeStoryRepo) Get(ctx context.Context, id string) (*models.Story, error) {
	s, ok := f.stories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStoryRepo) ListActive(ctx context.Context, now time.Time) ([]models.Story, error) {
	var out []models.Story
	for _, s := range f.stories {
		if s.ExpiresAt.After(now) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStoryRepo) Delete(ctx context.Context, id string) error {
	delete(f.stories, id)
	return nil
}

func (f *fakeStoryRepo) ListExpired(ctx context.Context, now time.Time) ([]models.Story, error) {
	var out []models.Story
	for _, s := range f.stories {
		if !s.ExpiresAt.After(now) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStoryRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	f.deleteExpiredCalls++
	var n int64
	for id, s := range f.stories {
		if !s.ExpiresAt.After(now) {
			delete(f.stories, id)
			n++
		}
	}
	return n, nil
}

type fakeAssets struct {
	deleted []string
	err     error
}

func (f *fakeAssets) Delete(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return f.err
}

func newTestService(repo *fakeStoryRepo, assets *fakeAssets, now time.Time) *Service {
	svc := NewService(repo, assets, zerolog.Nop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateSetsExpiry(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeStoryRepo()
	svc := newTestService(repo, &fakeAssets{}, now)

	story, err := svc.Create(context.Background(), CreateStoryInput{
		ImageURL: "https://cdn.example/stories/a.webp",
		PublicID: "stories/a",
		Caption:  "fresh set",
		UserID:   "admin-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got := story.ExpiresAt.Sub(story.CreatedAt); got != TTL {
		t.Fatalf("expiry window = %v, want %v", got, TTL)
	}
	if !story.ExpiresAt.Equal(now.Add(24 * time.Hour)) {
		t.Fatalf("expiresAt = %v, want %v", story.ExpiresAt, now.Add(24*time.Hour))
	}
}

func TestListActiveExcludesExpired(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeStoryRepo()
	svc := newTestService(repo, &fakeAssets{}, now)

	repo.Create(context.Background(), &models.Story{
		ID: "live", ExpiresAt: now.Add(time.Hour),
	})
	repo.Create(context.Background(), &models.Story{
		ID: "dead", ExpiresAt: now.Add(-time.Minute),
	})

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 || active[0].ID != "live" {
		t.Fatalf("active = %v, want just \"live\"", active)
	}
}

func TestDeleteMissingStoryIsNoOp(t *testing.T) {
	repo := newFakeStoryRepo()
	assets := &fakeAssets{}
	svc := newTestService(repo, assets, time.Now())

	if err := svc.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(assets.deleted) != 0 {
		t.Fatalf("asset deletes = %v, want none", assets.deleted)
	}
}

func TestDeleteRemovesRowDespiteAssetFailure(t *testing.T) {
	now := time.Now()
	repo := newFakeStoryRepo()
	assets := &fakeAssets{err: errors.New("s3 unavailable")}
	svc := newTestService(repo, assets, now)

	repo.Create(context.Background(), &models.Story{
		ID: "s-1", PublicID: "stories/s-1", ExpiresAt: now.Add(time.Hour),
	})

	if err := svc.Delete(context.Background(), "s-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(context.Background(), "s-1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatal("row still present after delete")
	}
}

func TestSweepNoExpiredIsNoOp(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeStoryRepo()
	assets := &fakeAssets{}
	svc := newTestService(repo, assets, now)

	repo.Create(context.Background(), &models.Story{
		ID: "live", PublicID: "stories/live", ExpiresAt: now.Add(time.Hour),
	})

	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(assets.deleted) != 0 {
		t.Fatalf("asset deletes = %v, want none", assets.deleted)
	}
	if repo.deleteExpiredCalls != 0 {
		t.Fatalf("DeleteExpired called %d times, want 0", repo.deleteExpiredCalls)
	}
}

func TestSweepPurgesExpired(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeStoryRepo()
	assets := &fakeAssets{}
	svc := newTestService(repo, assets, now)

	repo.Create(context.Background(), &models.Story{
		ID: "old-1", PublicID: "stories/old-1", ExpiresAt: now.Add(-time.Hour),
	})
	repo.Create(context.Background(), &models.Story{
		ID: "old-2", PublicID: "stories/old-2", ExpiresAt: now.Add(-time.Minute),
	})
	repo.Create(context.Background(), &models.Story{
		ID: "live", PublicID: "stories/live", ExpiresAt: now.Add(time.Hour),
	})

	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	if len(assets.deleted) != 2 {
		t.Fatalf("asset deletes = %v, want the two expired", assets.deleted)
	}
	if len(repo.stories) != 1 {
		t.Fatalf("%d rows remain, want 1", len(repo.stories))
	}
	if _, ok := repo.stories["live"]; !ok {
		t.Fatal("live story was purged")
	}

	// Running again with nothing left expired changes nothing.
	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatalf("second Sweep: %v", err)
	}
	if len(repo.stories) != 1 {
		t.Fatalf("second sweep removed rows, %d remain", len(repo.stories))
	}
}

func TestSweepAssetFailureDoesNotBlockRowDelete(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeStoryRepo()
	assets := &fakeAssets{err: errors.New("s3 unavailable")}
	svc := newTestService(repo, assets, now)

	repo.Create(context.Background(), &models.Story{
		ID: "old", PublicID: "stories/old", ExpiresAt: now.Add(-time.Hour),
	})

	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(repo.stories) != 0 {
		t.Fatal("expired row survived the sweep")
	}
}
