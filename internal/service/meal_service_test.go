package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"github.com/viniciusmog/daily-diet-api/internal/repository/postgres"
	"github.com/viniciusmog/daily-diet-api/internal/service"
	"github.com/viniciusmog/daily-diet-api/internal/testutil"
)

func TestMealService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	mealService := service.NewMealService(repos.Meal)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)

	meal, err := mealService.Create(ctx, owner.ID, service.MealInput{
		Name:        "suco detox",
		Description: "celery and apple",
		OnDiet:      true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, meal.ID)
	assert.Equal(t, owner.ID, meal.UserID, "owner must come from the caller identity")
	assert.Equal(t, "suco detox", meal.Name)
	assert.True(t, meal.OnDiet)
	assert.False(t, meal.CreatedAt.IsZero())
}

func TestMealService_OwnershipScoping(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	mealService := service.NewMealService(repos.Meal)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("johndoe").Build(t, testDB.DB)
	intruder := testutil.NewUserBuilder().WithUsername("jamesbond").Build(t, testDB.DB)

	meal, err := mealService.Create(ctx, owner.ID, service.MealInput{Name: "salad", OnDiet: true})
	require.NoError(t, err)

	patch := service.MealInput{Name: "hijacked", OnDiet: false}

	t.Run("get by another user", func(t *testing.T) {
		_, err := mealService.Get(ctx, meal.ID, intruder.ID)
		assert.ErrorIs(t, err, domain.ErrMealNotFound)
	})

	t.Run("update by another user", func(t *testing.T) {
		err := mealService.Update(ctx, meal.ID, intruder.ID, patch)
		assert.ErrorIs(t, err, domain.ErrMealNotFound)
	})

	t.Run("delete by another user", func(t *testing.T) {
		err := mealService.Delete(ctx, meal.ID, intruder.ID)
		assert.ErrorIs(t, err, domain.ErrMealNotFound)
	})

	t.Run("meal is untouched for its owner", func(t *testing.T) {
		got, err := mealService.Get(ctx, meal.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "salad", got.Name)
		assert.True(t, got.OnDiet)
	})
}

func TestMealService_DeleteTwice(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	mealService := service.NewMealService(repos.Meal)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)
	meal, err := mealService.Create(ctx, owner.ID, service.MealInput{Name: "toast"})
	require.NoError(t, err)

	require.NoError(t, mealService.Delete(ctx, meal.ID, owner.ID))

	err = mealService.Delete(ctx, meal.ID, owner.ID)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)

	// A deleted id behaves as if it never existed
	_, err = mealService.Get(ctx, meal.ID, owner.ID)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
	err = mealService.Update(ctx, meal.ID, owner.ID, service.MealInput{Name: "again"})
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}

func TestMealService_Summarize(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	mealService := service.NewMealService(repos.Meal)
	ctx := context.Background()

	owner := testutil.NewUserBuilder().WithUsername("owner").Build(t, testDB.DB)

	_, err := mealService.Create(ctx, owner.ID, service.MealInput{Name: "suco detox", OnDiet: true})
	require.NoError(t, err)
	_, err = mealService.Create(ctx, owner.ID, service.MealInput{Name: "hamburger", OnDiet: false})
	require.NoError(t, err)

	summary, err := mealService.Summarize(ctx, owner.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Total)
	assert.Equal(t, int64(1), summary.OnDietCount)
	assert.Equal(t, int64(1), summary.OffDietCount)
}
