package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"pandas-platform/backend/config"
	"pandas-platform/backend/models"
	"pandas-platform/backend/seeds"
	"pandas-platform/backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()

	db, err := utils.InitDB(&config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "store.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = utils.CloseDB(db) })

	require.NoError(t, AutoMigrate(db))
	s := NewGormStore(db)
	require.NoError(t, s.SeedModules(context.Background(), seeds.Modules()))
	return s, db
}

func TestUserStore(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	user := &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.NotZero(t, user.ID)

	dup := &models.User{Name: "Other", Email: "ada@example.com", PasswordHash: "hash2"}
	assert.ErrorIs(t, s.CreateUser(ctx, dup), ErrDuplicate)

	found, err := s.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = s.FindUserByID(ctx, user.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedModulesIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	changed := seeds.Modules()
	changed[0].Title = "Renamed"
	require.NoError(t, s.SeedModules(ctx, changed))

	modules, err := s.ListModules(ctx)
	require.NoError(t, err)
	require.Len(t, modules, len(seeds.Modules()))
	assert.Equal(t, "01_fundamentals", modules[0].ID)
	assert.Equal(t, "Pandas Fundamentals", modules[0].Title)
	assert.Len(t, modules[0].Topics, 5)
	assert.Equal(t, "02_data_structures", modules[1].ID)

	m, err := s.FindModule(ctx, "02_data_structures")
	require.NoError(t, err)
	assert.Equal(t, models.TopicPractical, m.Topics[0].Type)

	_, err = s.FindModule(ctx, "99_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertProgressKeepsOneRow(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	first, err := s.UpsertProgress(ctx, &models.Progress{
		UserID: 1, ModuleID: "01_fundamentals", TopicID: "what_is_pandas",
		Completed: true, TimeSpent: 20, Notes: "ok", CompletionDate: &now, UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NotNil(t, first.CompletionDate)

	later := now.Add(time.Minute)
	second, err := s.UpsertProgress(ctx, &models.Progress{
		UserID: 1, ModuleID: "01_fundamentals", TopicID: "what_is_pandas",
		Completed: false, TimeSpent: 25, UpdatedAt: later,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.Completed)
	assert.Nil(t, second.CompletionDate)
	assert.Equal(t, 25, second.TimeSpent)
	assert.Equal(t, "", second.Notes)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	var count int64
	require.NoError(t, db.Model(&models.Progress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertProgressConcurrent(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.UpsertProgress(ctx, &models.Progress{
				UserID: 7, ModuleID: "01_fundamentals", TopicID: "intro_series",
				Completed: i%2 == 0, TimeSpent: i, UpdatedAt: time.Now(),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Progress{}).
		Where("user_id = ? AND module_id = ? AND topic_id = ?", 7, "01_fundamentals", "intro_series").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// the unique index rejects a plain second insert of the same key
	err := db.Create(&models.Progress{
		UserID: 7, ModuleID: "01_fundamentals", TopicID: "intro_series", UpdatedAt: time.Now(),
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestListProgressJoinsModules(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	base := time.Now()

	writes := []struct {
		module, topic string
	}{
		{"01_fundamentals", "what_is_pandas"},
		{"02_data_structures", "creating_series"},
		{"unknown_module", "t1"},
		{"01_fundamentals", "intro_series"},
	}
	for i, w := range writes {
		_, err := s.UpsertProgress(ctx, &models.Progress{
			UserID: 3, ModuleID: w.module, TopicID: w.topic,
			Completed: true, TimeSpent: 10, UpdatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
	_, err := s.UpsertProgress(ctx, &models.Progress{
		UserID: 4, ModuleID: "01_fundamentals", TopicID: "what_is_pandas", UpdatedAt: base,
	})
	require.NoError(t, err)

	rows, err := s.ListUserProgress(ctx, 3)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	order := make([]string, 0, len(rows))
	for _, r := range rows {
		order = append(order, fmt.Sprintf("%s/%s", r.ModuleID, r.TopicID))
	}
	assert.Equal(t, []string{
		"01_fundamentals/intro_series",
		"unknown_module/t1",
		"02_data_structures/creating_series",
		"01_fundamentals/what_is_pandas",
	}, order)

	require.NotNil(t, rows[0].ModuleTitle)
	assert.Equal(t, "Pandas Fundamentals", *rows[0].ModuleTitle)
	assert.Nil(t, rows[1].ModuleTitle)
	require.NotNil(t, rows[0].ModuleTopics)

	moduleRows, err := s.ListModuleProgress(ctx, 3, "01_fundamentals")
	require.NoError(t, err)
	assert.Len(t, moduleRows, 2)

	missing, err := s.ListModuleProgress(ctx, 3, "unknown_module")
	require.NoError(t, err)
	assert.Empty(t, missing)
}
