package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viniciusmog/daily-diet-api/internal/repository"
	"github.com/viniciusmog/daily-diet-api/internal/repository/postgres"
	"github.com/viniciusmog/daily-diet-api/internal/testutil"
	"gorm.io/gorm"
)

func TestMealRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)
	other := testutil.NewUserBuilder().WithUsername("other").Build(t, testDB.DB)
	meal := testutil.NewMealBuilder(owner.ID).WithName("suco detox").Build(t, testDB.DB)

	tests := []struct {
		name     string
		id       uuid.UUID
		callerID uuid.UUID
		wantErr  error
	}{
		{
			name:     "owner fetches own meal",
			id:       meal.ID,
			callerID: owner.ID,
		},
		{
			name:     "other user cannot see it",
			id:       meal.ID,
			callerID: other.ID,
			wantErr:  gorm.ErrRecordNotFound,
		},
		{
			name:     "nonexistent id",
			id:       uuid.New(),
			callerID: owner.ID,
			wantErr:  gorm.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(ctx, tt.id, tt.callerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, meal.ID, got.ID)
			assert.Equal(t, owner.ID, got.UserID)
		})
	}
}

func TestMealRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)
	other := testutil.NewUserBuilder().WithUsername("other").Build(t, testDB.DB)
	meal := testutil.NewMealBuilder(owner.ID).WithOnDiet(true).Build(t, testDB.DB)

	patch := repository.MealPatch{
		Name:        "feijoada",
		Description: "weekend exception",
		OnDiet:      false,
	}

	t.Run("other user cannot update", func(t *testing.T) {
		err := repo.Update(ctx, meal.ID, other.ID, patch)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("owner updates in place", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, meal.ID, owner.ID, patch))

		got, err := repo.GetByID(ctx, meal.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "feijoada", got.Name)
		assert.Equal(t, "weekend exception", got.Description)
		assert.False(t, got.OnDiet)
	})

	t.Run("nonexistent id", func(t *testing.T) {
		err := repo.Update(ctx, uuid.New(), owner.ID, patch)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestMealRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)
	other := testutil.NewUserBuilder().WithUsername("other").Build(t, testDB.DB)
	meal := testutil.NewMealBuilder(owner.ID).Build(t, testDB.DB)

	t.Run("other user cannot delete", func(t *testing.T) {
		err := repo.Delete(ctx, meal.ID, other.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, meal.ID, owner.ID))
	})

	t.Run("second delete of the same id fails", func(t *testing.T) {
		err := repo.Delete(ctx, meal.ID, owner.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestMealRepository_GetByOwner(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)
	other := testutil.NewUserBuilder().WithUsername("other").Build(t, testDB.DB)

	testutil.NewMealBuilder(owner.ID).WithName("breakfast").Build(t, testDB.DB)
	testutil.NewMealBuilder(owner.ID).WithName("lunch").Build(t, testDB.DB)
	testutil.NewMealBuilder(other.ID).WithName("dinner").Build(t, testDB.DB)

	meals, err := repo.GetByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	for _, meal := range meals {
		assert.Equal(t, owner.ID, meal.UserID)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMealRepository_InsertionOrdering(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)
	base := time.Now().Truncate(time.Second)

	testutil.NewMealBuilder(owner.ID).WithName("breakfast").WithCreatedAt(base).Build(t, testDB.DB)
	testutil.NewMealBuilder(owner.ID).WithName("lunch").WithCreatedAt(base.Add(time.Minute)).Build(t, testDB.DB)
	testutil.NewMealBuilder(owner.ID).WithName("dinner").WithCreatedAt(base.Add(2 * time.Minute)).Build(t, testDB.DB)

	wantOrder := []string{"breakfast", "lunch", "dinner"}

	t.Run("GetAll preserves creation order", func(t *testing.T) {
		meals, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, meals, 3)
		for i, meal := range meals {
			assert.Equal(t, wantOrder[i], meal.Name)
		}
	})

	t.Run("GetByOwner preserves creation order", func(t *testing.T) {
		meals, err := repo.GetByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, meals, 3)
		for i, meal := range meals {
			assert.Equal(t, wantOrder[i], meal.Name)
		}
	})
}

func TestMealRepository_Summarize(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)
	other := testutil.NewUserBuilder().WithUsername("other").Build(t, testDB.DB)

	testutil.NewMealBuilder(owner.ID).WithOnDiet(true).Build(t, testDB.DB)
	testutil.NewMealBuilder(owner.ID).WithOnDiet(true).Build(t, testDB.DB)
	testutil.NewMealBuilder(owner.ID).WithOnDiet(false).Build(t, testDB.DB)
	testutil.NewMealBuilder(other.ID).WithOnDiet(false).Build(t, testDB.DB)

	summary, err := repo.Summarize(ctx, owner.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, int64(2), summary.OnDietCount)
	assert.Equal(t, int64(1), summary.OffDietCount)
	assert.Equal(t, summary.Total, summary.OnDietCount+summary.OffDietCount)
}

func TestMealRepository_Summarize_Empty(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewMealRepository(testDB.DB)
	ctx := context.Background()

	summary, err := repo.Summarize(ctx, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.Total)
	assert.Equal(t, int64(0), summary.OnDietCount)
	assert.Equal(t, int64(0), summary.OffDietCount)
}
