package app

import (
	"context"
	"testing"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
	"github.com/Poirot101/oct-recruitment-system/internal/repository/memory"
)

func TestProfileServiceCreate_RecruiterOwnsOwnProfiles(t *testing.T) {
	store := memory.NewStore()
	service := NewProfileService(store.Profiles())

	created, err := service.Create(context.Background(), recruiterIdentity("hr@acme.com"), "Acme Corp", "Software Engineer", "someone@else.com")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.RecruiterEmail != "hr@acme.com" {
		t.Fatalf("expected owner hr@acme.com, got %q", created.RecruiterEmail)
	}
}

func TestProfileServiceCreate_AdminNamesOwner(t *testing.T) {
	store := memory.NewStore()
	service := NewProfileService(store.Profiles())
	admin := user.Identity{UserID: "admin", Role: user.RoleAdmin}

	_, err := service.Create(context.Background(), admin, "Acme Corp", "Software Engineer", "")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	created, err := service.Create(context.Background(), admin, "Acme Corp", "Software Engineer", "hr@acme.com")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.RecruiterEmail != "hr@acme.com" {
		t.Fatalf("expected owner hr@acme.com, got %q", created.RecruiterEmail)
	}
}

func TestProfileServiceCreate_MissingFields(t *testing.T) {
	store := memory.NewStore()
	service := NewProfileService(store.Profiles())

	_, err := service.Create(context.Background(), recruiterIdentity("hr@acme.com"), " ", "", "")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProfileServiceList_RecruiterScoped(t *testing.T) {
	store := memory.NewStore()
	service := NewProfileService(store.Profiles())

	if _, err := service.Create(context.Background(), recruiterIdentity("hr@acme.com"), "Acme Corp", "Software Engineer", ""); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if _, err := service.Create(context.Background(), recruiterIdentity("jobs@globex.com"), "Globex", "Analyst", ""); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	owned, err := service.List(context.Background(), recruiterIdentity("hr@acme.com"))
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if len(owned) != 1 || owned[0].RecruiterEmail != "hr@acme.com" {
		t.Fatalf("expected only owned profiles, got %+v", owned)
	}

	all, err := service.List(context.Background(), studentIdentity("2021CS001"))
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(all))
	}
}
