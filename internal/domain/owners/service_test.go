package owners_test

import (
	"context"
	"errors"
	"testing"

	"petcareplus/internal/adapters/storage/memory"
	"petcareplus/internal/domain/owners"
)

func validInput() owners.Input {
	return owners.Input{
		FirstName: "Ana",
		LastName:  "Reyes",
		Phone:     "555-0100",
		Email:     "ana@example.com",
		Address:   "123 Maple St",
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := owners.NewService(memory.NewOwnersRepo())

	cases := []struct {
		name   string
		mutate func(*owners.Input)
	}{
		{"missing first_name", func(in *owners.Input) { in.FirstName = "  " }},
		{"missing last_name", func(in *owners.Input) { in.LastName = "" }},
		{"bad email", func(in *owners.Input) { in.Email = "not-an-email" }},
		{"email with spaces", func(in *owners.Input) { in.Email = "a b@example.com" }},
		{"empty email", func(in *owners.Input) { in.Email = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := svc.Create(context.Background(), 1, in); !errors.Is(err, owners.ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreate_TrimsAndRoundTrips(t *testing.T) {
	svc := owners.NewService(memory.NewOwnersRepo())

	in := validInput()
	in.FirstName = "  Ana "
	in.Address = " 123 Maple St  "

	created, err := svc.Create(context.Background(), 7, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.OwnerID != 7 || created.FirstName != "Ana" || created.Address != "123 Maple St" {
		t.Fatalf("created = %+v", created)
	}

	got, err := svc.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("got = %+v, want %+v", got, created)
	}
}

func TestUpdate_MissingOwner(t *testing.T) {
	svc := owners.NewService(memory.NewOwnersRepo())

	if _, err := svc.Update(context.Background(), 99, validInput()); !errors.Is(err, owners.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	svc := owners.NewService(memory.NewOwnersRepo())

	if _, err := svc.Create(context.Background(), 1, validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, owners.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetByID(context.Background(), 1); !errors.Is(err, owners.ErrNotFound) {
		t.Fatalf("get after delete err = %v, want ErrNotFound", err)
	}
}

func TestList_SortedByID(t *testing.T) {
	svc := owners.NewService(memory.NewOwnersRepo())

	for _, id := range []int64{3, 1, 2} {
		if _, err := svc.Create(context.Background(), id, validInput()); err != nil {
			t.Fatalf("create %d: %v", id, err)
		}
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	for i, want := range []int64{1, 2, 3} {
		if list[i].OwnerID != want {
			t.Fatalf("list[%d].OwnerID = %d, want %d", i, list[i].OwnerID, want)
		}
	}
}
