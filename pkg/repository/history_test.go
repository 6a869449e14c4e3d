package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
	"github.com/visitnotes-lab/visitnotes/pkg/repository/memory"
	"github.com/visitnotes-lab/visitnotes/pkg/repository/postgres"
)

func runHistoryRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Save returns entry with generated ID and timestamp", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.History().Save(ctx, &model.HistoryEntry{
			UserID:      "user_save",
			PatientName: "Alice Smith",
			DateOfVisit: "2026-08-01",
			Summary:     "### Summary of visit for the doctor's records\nRoutine checkup.",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, saved.ID.String()).NotEqual("")
		gt.Bool(t, saved.CreatedAt.IsZero()).False()
	})

	t.Run("Save then list returns matching entry newest-first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		const userID = "user_roundtrip"

		older, err := repo.History().Save(ctx, &model.HistoryEntry{
			UserID:      userID,
			PatientName: "Bob Jones",
			DateOfVisit: "2026-07-15",
			Summary:     "First visit summary",
		})
		gt.NoError(t, err).Required()

		newer, err := repo.History().Save(ctx, &model.HistoryEntry{
			UserID:      userID,
			PatientName: "Bob Jones",
			DateOfVisit: "2026-08-20",
			Summary:     "Second visit summary",
		})
		gt.NoError(t, err).Required()

		entries, err := repo.History().ListByUser(ctx, userID, 50)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(2)

		gt.Value(t, entries[0].ID).Equal(newer.ID)
		gt.Value(t, entries[0].PatientName).Equal("Bob Jones")
		gt.Value(t, entries[0].DateOfVisit).Equal("2026-08-20")
		gt.Value(t, entries[0].Summary).Equal("Second visit summary")
		gt.Value(t, entries[1].ID).Equal(older.ID)
	})

	t.Run("List never returns another user's entries", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.History().Save(ctx, &model.HistoryEntry{
			UserID:      "user_a",
			PatientName: "Carol White",
			DateOfVisit: "2026-08-10",
			Summary:     "Private summary",
		})
		gt.NoError(t, err).Required()

		entries, err := repo.History().ListByUser(ctx, "user_b", 50)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(0)
	})

	t.Run("List caps results at the given limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		const userID = "user_pagination"
		for i := 0; i < 60; i++ {
			_, err := repo.History().Save(ctx, &model.HistoryEntry{
				UserID:      userID,
				PatientName: "Dave Green",
				DateOfVisit: "2026-08-25",
				Summary:     fmt.Sprintf("visit %d", i),
			})
			gt.NoError(t, err).Required()
		}

		entries, err := repo.History().ListByUser(ctx, userID, 50)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(50)

		// The 50 most recent means the last saved entry comes first and the
		// 10 oldest are dropped.
		gt.Value(t, entries[0].Summary).Equal("visit 59")
		gt.Value(t, entries[49].Summary).Equal("visit 10")
	})

	t.Run("Duplicate saves create duplicate rows", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		entry := &model.HistoryEntry{
			UserID:      "user_dup",
			PatientName: "Eve Black",
			DateOfVisit: "2026-08-11",
			Summary:     "same summary twice",
		}

		first, err := repo.History().Save(ctx, entry)
		gt.NoError(t, err).Required()
		second, err := repo.History().Save(ctx, entry)
		gt.NoError(t, err).Required()

		gt.Value(t, first.ID).NotEqual(second.ID)

		entries, err := repo.History().ListByUser(ctx, "user_dup", 50)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(2)
	})
}

func TestMemoryHistoryRepository(t *testing.T) {
	runHistoryRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestPostgresHistoryRepository(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	runHistoryRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		client, err := postgres.New(dsn)
		gt.NoError(t, err).Required()
		t.Cleanup(func() {
			if err := client.Close(); err != nil {
				t.Logf("failed to close postgres client: %v", err)
			}
		})
		return client
	})
}

func TestPostgresUnconfigured(t *testing.T) {
	client, err := postgres.New("")
	gt.NoError(t, err).Required()

	ctx := context.Background()

	_, err = client.History().Save(ctx, &model.HistoryEntry{
		UserID:      "user_x",
		PatientName: "Frank Gray",
		DateOfVisit: "2026-08-12",
		Summary:     "never stored",
	})
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrStoreNotConfigured)).True()

	_, err = client.History().ListByUser(ctx, "user_x", 50)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrStoreNotConfigured)).True()

	gt.NoError(t, client.Close())
}
