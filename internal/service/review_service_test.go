package service

import (
	"errors"
	"testing"
	"time"

	"github.com/voltshop/internal/constants"
	"github.com/voltshop/internal/repository"
)

func newReviewTestService(t *testing.T) (*ReviewService, *ProductService) {
	t.Helper()
	db := newTestDB(t)
	productRepo := repository.NewProductRepository(db)
	return NewReviewService(repository.NewReviewRepository(db), productRepo), NewProductService(productRepo)
}

func TestAddReviewStampsTodayAndRejectsDuplicates(t *testing.T) {
	reviews, products := newReviewTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 2, 599)

	review, err := reviews.Add(AddReviewInput{
		Model:    "iPhone13",
		Username: "alice",
		Score:    4,
		Comment:  "solid phone",
	})
	if err != nil {
		t.Fatalf("add review failed: %v", err)
	}
	if review.Date != time.Now().Format(constants.DateLayout) {
		t.Fatalf("expected review dated today, got %q", review.Date)
	}

	if _, err := reviews.Add(AddReviewInput{Model: "iPhone13", Username: "alice", Score: 5}); !errors.Is(err, ErrReviewExists) {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}
}

func TestAddReviewValidation(t *testing.T) {
	reviews, products := newReviewTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 2, 599)

	if _, err := reviews.Add(AddReviewInput{Model: "iPhone13", Username: "alice", Score: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for score below range, got %v", err)
	}
	if _, err := reviews.Add(AddReviewInput{Model: "iPhone13", Username: "alice", Score: 6}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for score above range, got %v", err)
	}
	if _, err := reviews.Add(AddReviewInput{Model: "NoSuchModel", Username: "alice", Score: 3}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestListReviewsByModel(t *testing.T) {
	reviews, products := newReviewTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 2, 599)

	for i, user := range []string{"alice", "bob"} {
		if _, err := reviews.Add(AddReviewInput{Model: "iPhone13", Username: user, Score: i + 3}); err != nil {
			t.Fatalf("add review for %s failed: %v", user, err)
		}
	}

	listed, err := reviews.ListByModel("iPhone13")
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(listed))
	}

	if _, err := reviews.ListByModel("NoSuchModel"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteReview(t *testing.T) {
	reviews, products := newReviewTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 2, 599)

	if _, err := reviews.Add(AddReviewInput{Model: "iPhone13", Username: "alice", Score: 4}); err != nil {
		t.Fatalf("add review failed: %v", err)
	}

	if err := reviews.Delete("iPhone13", "bob"); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
	if err := reviews.Delete("NoSuchModel", "alice"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := reviews.Delete("iPhone13", "alice"); err != nil {
		t.Fatalf("delete review failed: %v", err)
	}

	listed, err := reviews.ListByModel("iPhone13")
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no reviews, got %d", len(listed))
	}
}

func TestDeleteReviewsByModel(t *testing.T) {
	reviews, products := newReviewTestService(t)
	mustRegisterProduct(t, products, "iPhone13", constants.CategorySmartphone, 2, 599)

	for _, user := range []string{"alice", "bob"} {
		if _, err := reviews.Add(AddReviewInput{Model: "iPhone13", Username: user, Score: 4}); err != nil {
			t.Fatalf("add review for %s failed: %v", user, err)
		}
	}

	if err := reviews.DeleteByModel("iPhone13"); err != nil {
		t.Fatalf("delete reviews by model failed: %v", err)
	}
	listed, err := reviews.ListByModel("iPhone13")
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no reviews, got %d", len(listed))
	}
}
