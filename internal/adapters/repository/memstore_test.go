package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/pbpsplit/internal/domain/model"
)

func TestMemoryStore_AppendAndRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(WithExpectedTeams(2))

	if total := store.Total(ctx); total != 0 {
		t.Errorf("expected total 0, got %d", total)
	}

	if err := store.Append(ctx, "KC", model.Play{"1"}, model.Play{"2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Append(ctx, "BAL", model.Play{"1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Append(ctx, "KC", model.Play{"3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plays, err := store.Plays(ctx, "KC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plays) != 3 {
		t.Fatalf("expected 3 plays, got %d", len(plays))
	}
	for i, want := range []string{"1", "2", "3"} {
		if plays[i][0] != want {
			t.Errorf("play %d: expected %s, got %s", i, want, plays[i][0])
		}
	}

	if c := store.Count(ctx, "KC"); c != 3 {
		t.Errorf("expected count 3, got %d", c)
	}
	if total := store.Total(ctx); total != 4 {
		t.Errorf("expected total 4, got %d", total)
	}
}

func TestMemoryStore_EmptyAppends(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Append(ctx, "", model.Play{"1"}); !errors.Is(err, ErrEmptyTeam) {
		t.Errorf("expected ErrEmptyTeam, got %v", err)
	}
	if err := store.Append(ctx, "NYJ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Plays(ctx, "NYJ"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a team without plays, got %v", err)
	}
	if _, err := store.Plays(ctx, "NYG"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for an unknown team, got %v", err)
	}
}

func TestMemoryStore_Release(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_ = store.Append(ctx, "KC", model.Play{"1"}, model.Play{"2"})
	_ = store.Append(ctx, "BAL", model.Play{"1"})

	store.Release(ctx, "KC")
	store.Release(ctx, "KC")
	store.Release(ctx, "SEA")

	if c := store.Count(ctx, "KC"); c != 0 {
		t.Errorf("expected released bucket to be empty, got %d", c)
	}
	if total := store.Total(ctx); total != 1 {
		t.Errorf("expected total 1 after release, got %d", total)
	}
	if _, err := store.Plays(ctx, "KC"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after release, got %v", err)
	}
}

func TestMemoryStore_ReadIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Append(ctx, "KC", model.Play{"1"})

	plays, _ := store.Plays(ctx, "KC")
	plays[0] = model.Play{"changed"}

	again, _ := store.Plays(ctx, "KC")
	if again[0][0] != "1" {
		t.Errorf("expected stored play to be unchanged, got %s", again[0][0])
	}
}
