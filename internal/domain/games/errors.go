package games

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by repositories when the target game does not exist.
	ErrNotFound = errors.New("game not found")
	// ErrIdentityMismatch matches any IdentityMismatchError via errors.Is.
	ErrIdentityMismatch = errors.New("game identity mismatch")
)

// IdentityMismatchError reports an update whose path id disagrees with the id
// embedded in the submitted game.
type IdentityMismatchError struct {
	PathID int64
	GameID int64
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("%s (path=%d game=%d)", ErrIdentityMismatch.Error(), e.PathID, e.GameID)
}

func (e *IdentityMismatchError) Is(target error) bool {
	return target == ErrIdentityMismatch
}

// AsIdentityMismatch attempts to unwrap an error into an IdentityMismatchError.
func AsIdentityMismatch(err error) (*IdentityMismatchError, bool) {
	var mmErr *IdentityMismatchError
	if errors.As(err, &mmErr) {
		return mmErr, true
	}
	return nil, false
}

// CheckIdentity resolves the id an update should apply to. A zero embedded id
// adopts the path id; any other value must match it.
func CheckIdentity(pathID int64, game Game) (Game, error) {
	if game.ID == 0 {
		return game.WithID(pathID), nil
	}
	if game.ID != pathID {
		return Game{}, &IdentityMismatchError{PathID: pathID, GameID: game.ID}
	}
	return game, nil
}
