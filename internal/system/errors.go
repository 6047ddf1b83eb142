package system

import "errors"

var (
	// ErrInsufficientResource means a conversion asked for more than the ledger holds.
	ErrInsufficientResource = errors.New("insufficient resource")
	// ErrLockedFeature means the action needs an unlock the player does not have.
	ErrLockedFeature = errors.New("feature locked")
	// ErrNoAmmo means the selected weapon is empty.
	ErrNoAmmo = errors.New("no ammo")
	// ErrUnknownType means a weapon, resource or enemy name is not in the library.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnknownActor means an id does not refer to a live actor.
	ErrUnknownActor = errors.New("unknown actor")
	// ErrWrongMode means the request does not apply to the current play track.
	ErrWrongMode = errors.New("not available in current mode")
)
