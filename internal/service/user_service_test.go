package service

import (
	"errors"
	"testing"

	"github.com/voltshop/internal/constants"
	"github.com/voltshop/internal/models"
	"github.com/voltshop/internal/repository"
)

func newUserTestService(t *testing.T) (*UserService, repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewUserService(repo), repo
}

func seedUser(t *testing.T, repo repository.UserRepository, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Name:         "Test",
		Surname:      "User",
		Role:         role,
		PasswordHash: "x",
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("seed user %s failed: %v", username, err)
	}
	return user
}

func TestGetByUsernameAccessControl(t *testing.T) {
	users, repo := newUserTestService(t)
	alice := seedUser(t, repo, "alice", constants.RoleCustomer)
	seedUser(t, repo, "bob", constants.RoleCustomer)
	admin := seedUser(t, repo, "root", constants.RoleAdmin)

	if _, err := users.GetByUsername(alice, "alice"); err != nil {
		t.Fatalf("self lookup failed: %v", err)
	}
	if _, err := users.GetByUsername(alice, "bob"); !errors.Is(err, ErrUserProtected) {
		t.Fatalf("expected ErrUserProtected, got %v", err)
	}
	if _, err := users.GetByUsername(admin, "bob"); err != nil {
		t.Fatalf("admin lookup failed: %v", err)
	}
	if _, err := users.GetByUsername(admin, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateInfoRules(t *testing.T) {
	users, repo := newUserTestService(t)
	alice := seedUser(t, repo, "alice", constants.RoleCustomer)
	admin := seedUser(t, repo, "root", constants.RoleAdmin)
	seedUser(t, repo, "root2", constants.RoleAdmin)

	updated, err := users.UpdateInfo(alice, "alice", UpdateInfoInput{
		Name:      "Alice",
		Surname:   "Smith",
		Address:   "Main St 1",
		Birthdate: "1990-05-20",
	})
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if updated.Address != "Main St 1" || updated.Birthdate != "1990-05-20" {
		t.Fatalf("unexpected updated user: %+v", updated)
	}

	if _, err := users.UpdateInfo(alice, "alice", UpdateInfoInput{Birthdate: "2999-01-01"}); !errors.Is(err, ErrFutureDate) {
		t.Fatalf("expected ErrFutureDate, got %v", err)
	}
	if _, err := users.UpdateInfo(alice, "alice", UpdateInfoInput{Birthdate: "20-05-1990"}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := users.UpdateInfo(alice, "root", UpdateInfoInput{}); !errors.Is(err, ErrUserProtected) {
		t.Fatalf("expected ErrUserProtected for non-admin updating others, got %v", err)
	}
	if _, err := users.UpdateInfo(admin, "root2", UpdateInfoInput{}); !errors.Is(err, ErrUserProtected) {
		t.Fatalf("expected ErrUserProtected for admin updating another admin, got %v", err)
	}
}

func TestDeleteRules(t *testing.T) {
	users, repo := newUserTestService(t)
	alice := seedUser(t, repo, "alice", constants.RoleCustomer)
	seedUser(t, repo, "bob", constants.RoleCustomer)
	admin := seedUser(t, repo, "root", constants.RoleAdmin)
	seedUser(t, repo, "root2", constants.RoleAdmin)

	if err := users.Delete(alice, "bob"); !errors.Is(err, ErrUserProtected) {
		t.Fatalf("expected ErrUserProtected, got %v", err)
	}
	if err := users.Delete(admin, "root2"); !errors.Is(err, ErrUserProtected) {
		t.Fatalf("expected ErrUserProtected for deleting another admin, got %v", err)
	}
	if err := users.Delete(admin, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := users.Delete(admin, "bob"); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := users.Delete(alice, "alice"); err != nil {
		t.Fatalf("self delete failed: %v", err)
	}
}

func TestListAndDeleteAllKeepAdmins(t *testing.T) {
	users, repo := newUserTestService(t)
	seedUser(t, repo, "alice", constants.RoleCustomer)
	seedUser(t, repo, "bob", constants.RoleManager)
	seedUser(t, repo, "root", constants.RoleAdmin)

	all, err := users.List()
	if err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 users, got %d", len(all))
	}

	managers, err := users.ListByRole(constants.RoleManager)
	if err != nil {
		t.Fatalf("list by role failed: %v", err)
	}
	if len(managers) != 1 || managers[0].Username != "bob" {
		t.Fatalf("unexpected managers: %+v", managers)
	}
	if _, err := users.ListByRole("superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	if err := users.DeleteAll(); err != nil {
		t.Fatalf("delete all failed: %v", err)
	}
	remaining, err := users.List()
	if err != nil {
		t.Fatalf("list after delete all failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Role != constants.RoleAdmin {
		t.Fatalf("expected only admin to remain, got %+v", remaining)
	}
}
