package services

import (
	"context"
	"errors"
	"testing"

	"github.com/terraincognita07/mealdiet/internal/models"
)

type stubMealRepo struct {
	created        []models.Meal
	listed         []models.Meal
	searchName     string
	total          int64
	inDiet         int64
	offDiet        int64
	dietListing    []models.Meal
	updatedID      string
	updatedDetails models.MealDetails
	deletedID      string
	calls          []string
	err            error
	failOn         string
}

func (stub *stubMealRepo) fail(call string) error {
	stub.calls = append(stub.calls, call)
	if stub.failOn == call {
		return stub.err
	}
	return nil
}

func (stub *stubMealRepo) Create(_ context.Context, meal *models.Meal) error {
	if err := stub.fail("create"); err != nil {
		return err
	}
	meal.ID = "generated-id"
	stub.created = append(stub.created, *meal)
	return nil
}

func (stub *stubMealRepo) ListBySession(context.Context, string) ([]models.Meal, error) {
	if err := stub.fail("list"); err != nil {
		return nil, err
	}
	return stub.listed, nil
}

func (stub *stubMealRepo) SearchByName(_ context.Context, _ string, name string) ([]models.Meal, error) {
	if err := stub.fail("search"); err != nil {
		return nil, err
	}
	stub.searchName = name
	return stub.listed, nil
}

func (stub *stubMealRepo) CountBySession(context.Context, string) (int64, error) {
	if err := stub.fail("count"); err != nil {
		return 0, err
	}
	return stub.total, nil
}

func (stub *stubMealRepo) CountBySessionAndDiet(_ context.Context, _ string, inDiet bool) (int64, error) {
	call := "count-off-diet"
	if inDiet {
		call = "count-in-diet"
	}
	if err := stub.fail(call); err != nil {
		return 0, err
	}
	if inDiet {
		return stub.inDiet, nil
	}
	return stub.offDiet, nil
}

func (stub *stubMealRepo) ListBySessionAndDiet(context.Context, string, bool) ([]models.Meal, error) {
	if err := stub.fail("list-in-diet"); err != nil {
		return nil, err
	}
	return stub.dietListing, nil
}

func (stub *stubMealRepo) UpdateByID(_ context.Context, id string, details models.MealDetails) (int64, error) {
	if err := stub.fail("update"); err != nil {
		return 0, err
	}
	stub.updatedID = id
	stub.updatedDetails = details
	return 0, nil
}

func (stub *stubMealRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	if err := stub.fail("delete"); err != nil {
		return 0, err
	}
	stub.deletedID = id
	return 0, nil
}

func TestCreateMealTrimsAndAttachesSession(t *testing.T) {
	repo := &stubMealRepo{}
	service := NewMealService(repo)

	meal, err := service.CreateMeal(context.Background(), "session-1", models.MealDetails{
		Name:        "  Eggs ",
		Description: "\tbreakfast\n",
		DateTime:    " 2024-01-01T08:00:00Z ",
		IsInDiet:    true,
	})
	if err != nil {
		t.Fatalf("CreateMeal() unexpected error: %v", err)
	}
	if meal.ID != "generated-id" {
		t.Fatalf("expected id from repository, got %q", meal.ID)
	}
	if meal.Name != "Eggs" || meal.Description != "breakfast" {
		t.Fatalf("expected trimmed name and description, got %q / %q", meal.Name, meal.Description)
	}
	if meal.DateTime != " 2024-01-01T08:00:00Z " {
		t.Fatalf("expected date_time stored verbatim, got %q", meal.DateTime)
	}
	if meal.SessionID == nil || *meal.SessionID != "session-1" {
		t.Fatalf("expected session-1, got %v", meal.SessionID)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestCreateMealRequiresSession(t *testing.T) {
	repo := &stubMealRepo{}
	service := NewMealService(repo)

	_, err := service.CreateMeal(context.Background(), "  ", models.MealDetails{Name: "Eggs"})
	if !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
	if len(repo.calls) != 0 {
		t.Fatalf("expected no repository calls, got %v", repo.calls)
	}
}

func TestCreateMealWrapsRepositoryError(t *testing.T) {
	repo := &stubMealRepo{failOn: "create", err: errors.New("disk full")}
	service := NewMealService(repo)

	_, err := service.CreateMeal(context.Background(), "session-1", models.MealDetails{Name: "Eggs"})
	if !errors.Is(err, ErrCreateMealFailed) {
		t.Fatalf("expected ErrCreateMealFailed, got %v", err)
	}
}

func TestListMealsNeverReturnsNil(t *testing.T) {
	service := NewMealService(&stubMealRepo{})

	meals, err := service.ListMeals(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("ListMeals() unexpected error: %v", err)
	}
	if meals == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestSearchMealsTrimsName(t *testing.T) {
	repo := &stubMealRepo{}
	service := NewMealService(repo)

	if _, err := service.SearchMeals(context.Background(), "session-1", "  egg "); err != nil {
		t.Fatalf("SearchMeals() unexpected error: %v", err)
	}
	if repo.searchName != "egg" {
		t.Fatalf("expected trimmed search name egg, got %q", repo.searchName)
	}
}

func TestSummarizeIssuesFourReads(t *testing.T) {
	repo := &stubMealRepo{
		total:       3,
		inDiet:      2,
		offDiet:     1,
		dietListing: []models.Meal{{ID: "a", IsInDiet: true}, {ID: "b", IsInDiet: true}},
	}
	service := NewMealService(repo)

	summary, err := service.Summarize(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if summary.TotalMeals != 3 || summary.TotalMealsTrue != 2 || summary.TotalMealsFalse != 1 {
		t.Fatalf("unexpected counts: %#v", summary)
	}
	if len(summary.MealsInDiet) != 2 {
		t.Fatalf("expected two in-diet meals, got %d", len(summary.MealsInDiet))
	}

	wantCalls := []string{"count", "count-in-diet", "count-off-diet", "list-in-diet"}
	if len(repo.calls) != len(wantCalls) {
		t.Fatalf("expected calls %v, got %v", wantCalls, repo.calls)
	}
	for index, call := range wantCalls {
		if repo.calls[index] != call {
			t.Fatalf("expected calls %v, got %v", wantCalls, repo.calls)
		}
	}
}

func TestSummarizeStopsAtFirstFailure(t *testing.T) {
	repo := &stubMealRepo{failOn: "count-in-diet", err: errors.New("locked")}
	service := NewMealService(repo)

	_, err := service.Summarize(context.Background(), "session-1")
	if !errors.Is(err, ErrSummarizeMealsFailed) {
		t.Fatalf("expected ErrSummarizeMealsFailed, got %v", err)
	}
	if len(repo.calls) != 2 {
		t.Fatalf("expected summary to stop after the failing read, got %v", repo.calls)
	}
}

func TestUpdateMealNormalizesDetails(t *testing.T) {
	repo := &stubMealRepo{}
	service := NewMealService(repo)

	err := service.UpdateMeal(context.Background(), "meal-1", models.MealDetails{
		Name:        " Salad ",
		Description: " greens ",
		DateTime:    "2024-02-01",
		IsInDiet:    true,
	})
	if err != nil {
		t.Fatalf("UpdateMeal() unexpected error: %v", err)
	}
	if repo.updatedID != "meal-1" {
		t.Fatalf("expected update of meal-1, got %q", repo.updatedID)
	}
	want := models.MealDetails{Name: "Salad", Description: "greens", DateTime: "2024-02-01", IsInDiet: true}
	if repo.updatedDetails != want {
		t.Fatalf("expected %#v, got %#v", want, repo.updatedDetails)
	}
}

func TestUpdateAndDeleteWrapRepositoryErrors(t *testing.T) {
	updateRepo := &stubMealRepo{failOn: "update", err: errors.New("boom")}
	if err := NewMealService(updateRepo).UpdateMeal(context.Background(), "meal-1", models.MealDetails{}); !errors.Is(err, ErrUpdateMealFailed) {
		t.Fatalf("expected ErrUpdateMealFailed, got %v", err)
	}

	deleteRepo := &stubMealRepo{failOn: "delete", err: errors.New("boom")}
	if err := NewMealService(deleteRepo).DeleteMeal(context.Background(), "meal-1"); !errors.Is(err, ErrDeleteMealFailed) {
		t.Fatalf("expected ErrDeleteMealFailed, got %v", err)
	}
}

func TestDeleteMealMissingIDIsNotAnError(t *testing.T) {
	repo := &stubMealRepo{}
	if err := NewMealService(repo).DeleteMeal(context.Background(), "missing"); err != nil {
		t.Fatalf("DeleteMeal() unexpected error: %v", err)
	}
	if repo.deletedID != "missing" {
		t.Fatalf("expected delete of missing, got %q", repo.deletedID)
	}
}
