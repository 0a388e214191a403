package games

import (
	"errors"
	"fmt"
	"testing"
)

func TestIdentityMismatchErrorString(t *testing.T) {
	err := &IdentityMismatchError{PathID: 1, GameID: 10}
	if got := err.Error(); got == "" || got == ErrIdentityMismatch.Error() {
		t.Fatalf("expected ids in error string, got %q", got)
	}
	if !errors.Is(err, ErrIdentityMismatch) {
		t.Fatalf("expected errors.Is to match sentinel")
	}
}

func TestAsIdentityMismatchUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("update game: %w", &IdentityMismatchError{PathID: 1, GameID: 10})

	mm, ok := AsIdentityMismatch(wrapped)
	if !ok || mm == nil {
		t.Fatalf("expected to unwrap identity mismatch")
	}
	if mm.PathID != 1 || mm.GameID != 10 {
		t.Fatalf("unexpected ids %+v", mm)
	}

	if _, ok := AsIdentityMismatch(errors.New("boom")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
	if _, ok := AsIdentityMismatch(ErrNotFound); ok {
		t.Fatalf("expected not found not to unwrap")
	}
}

func TestCheckIdentity(t *testing.T) {
	cases := []struct {
		name     string
		pathID   int64
		game     Game
		wantID   int64
		mismatch bool
	}{
		{"matching id", 1, Game{ID: 1, Title: "a"}, 1, false},
		{"zero id adopts path", 7, Game{Title: "b"}, 7, false},
		{"conflicting id", 1, Game{ID: 10, Title: "c"}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CheckIdentity(tc.pathID, tc.game)
			if tc.mismatch {
				if !errors.Is(err, ErrIdentityMismatch) {
					t.Fatalf("expected mismatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tc.wantID || got.Title != tc.game.Title {
				t.Fatalf("unexpected game %+v", got)
			}
		})
	}
}
