// internal/system/ledger.go
package system

import (
	"fmt"

	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/event"
	"go-fps-factory/pkg/logger"
)

// UnlockChecker answers whether a persisted unlock has been acquired.
type UnlockChecker interface {
	IsUnlocked(id defs.UnlockID) bool
}

// Ledger holds raw resources (unbounded, never negative) and ammunition
// (bounded by each weapon's MaxAmmo).
type Ledger struct {
	lib         *defs.Library
	unlocks     UnlockChecker
	autoConvert bool
	resources   map[defs.ResourceType]int
	ammo        map[defs.WeaponType]int
	dispatcher  *event.Dispatcher
	log         *logger.Logger
}

func NewLedger(lib *defs.Library, unlocks UnlockChecker, autoConvert bool, dispatcher *event.Dispatcher, log *logger.Logger) *Ledger {
	l := &Ledger{
		lib:         lib,
		unlocks:     unlocks,
		autoConvert: autoConvert,
		dispatcher:  dispatcher,
		log:         log,
	}
	l.Reset()
	return l
}

// Reset zeroes resources and refills ammo to each weapon's starting amount.
func (l *Ledger) Reset() {
	l.resources = make(map[defs.ResourceType]int, len(defs.AllResources))
	l.ammo = make(map[defs.WeaponType]int, len(defs.AllWeapons))
	for _, r := range defs.AllResources {
		l.resources[r] = 0
	}
	for _, w := range defs.AllWeapons {
		l.ammo[w] = l.lib.Ammo[w].StartingAmmo
	}
	for _, r := range defs.AllResources {
		l.emitResource(r, 0)
	}
	for _, w := range defs.AllWeapons {
		l.emitAmmo(w)
	}
}

func (l *Ledger) Resource(r defs.ResourceType) int { return l.resources[r] }
func (l *Ledger) Ammo(w defs.WeaponType) int       { return l.ammo[w] }
func (l *Ledger) MaxAmmo(w defs.WeaponType) int    { return l.lib.Ammo[w].MaxAmmo }

// Resources returns a copy of the resource balances.
func (l *Ledger) Resources() map[defs.ResourceType]int {
	out := make(map[defs.ResourceType]int, len(l.resources))
	for k, v := range l.resources {
		out[k] = v
	}
	return out
}

// AmmoCounts returns a copy of the ammo balances.
func (l *Ledger) AmmoCounts() map[defs.WeaponType]int {
	out := make(map[defs.WeaponType]int, len(l.ammo))
	for k, v := range l.ammo {
		out[k] = v
	}
	return out
}

// WeaponLocked reports whether w needs an unlock the player lacks.
func (l *Ledger) WeaponLocked(w defs.WeaponType) bool {
	req := l.lib.Ammo[w].RequiresUnlock
	return req != "" && (l.unlocks == nil || !l.unlocks.IsUnlocked(req))
}

// Collect adds amount of r. With auto-convert on, as much as fits is turned
// into ammo straight away.
func (l *Ledger) Collect(r defs.ResourceType, amount int) error {
	if _, ok := l.lib.Resources[r]; !ok {
		return fmt.Errorf("%w: resource %q", ErrUnknownType, r)
	}
	if amount <= 0 {
		return nil
	}
	l.resources[r] += amount
	l.emitResource(r, amount)
	if l.autoConvert {
		l.convertToFit(r)
	}
	return nil
}

// Convert spends amount of r on the mapped ammo type. Ammo is clamped to its
// maximum and the clamped excess is not refunded. It returns the ammo added.
func (l *Ledger) Convert(r defs.ResourceType, amount int) (int, error) {
	w, ok := l.lib.AmmoFor(r)
	if !ok {
		return 0, fmt.Errorf("%w: resource %q", ErrUnknownType, r)
	}
	if l.WeaponLocked(w) {
		return 0, fmt.Errorf("%w: %s conversion requires %s", ErrLockedFeature, r, l.lib.Ammo[w].RequiresUnlock)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", ErrInsufficientResource, amount)
	}
	if amount > l.resources[r] {
		return 0, fmt.Errorf("%w: need %d %s, have %d", ErrInsufficientResource, amount, r, l.resources[r])
	}
	if amount == 0 {
		return 0, nil
	}

	l.resources[r] -= amount
	added := l.addAmmo(w, amount)
	l.emitResource(r, -amount)
	if added < amount {
		l.log.Debug("converted %d %s, %d %s wasted at cap", amount, r, amount-added, w)
	}
	return added, nil
}

// ConvertAll converts the whole balance of r.
func (l *Ledger) ConvertAll(r defs.ResourceType) (int, error) {
	return l.Convert(r, l.resources[r])
}

func (l *Ledger) convertToFit(r defs.ResourceType) {
	w, ok := l.lib.AmmoFor(r)
	if !ok || l.WeaponLocked(w) {
		return
	}
	room := l.MaxAmmo(w) - l.ammo[w]
	n := l.resources[r]
	if room < n {
		n = room
	}
	if n <= 0 {
		return
	}
	if _, err := l.Convert(r, n); err != nil {
		l.log.Warn("auto-convert %s: %v", r, err)
	}
}

// Consume takes n rounds of w. It fails without side effects when short.
func (l *Ledger) Consume(w defs.WeaponType, n int) bool {
	if n <= 0 {
		return true
	}
	if l.ammo[w] < n {
		l.dispatcher.Emit(event.AmmoEmpty, event.AmmoChangedData{Weapon: w, Amount: l.ammo[w], Max: l.MaxAmmo(w)})
		return false
	}
	l.ammo[w] -= n
	l.emitAmmo(w)
	return true
}

// Add gives n rounds of w, clamped to its maximum, and returns what fit.
func (l *Ledger) Add(w defs.WeaponType, n int) int {
	if n <= 0 {
		return 0
	}
	return l.addAmmo(w, n)
}

// AddResources credits a reward table, e.g. a level completion bonus.
func (l *Ledger) AddResources(rewards map[defs.ResourceType]int) {
	for _, r := range defs.AllResources {
		if n, ok := rewards[r]; ok && n > 0 {
			if err := l.Collect(r, n); err != nil {
				l.log.Warn("reward %s: %v", r, err)
			}
		}
	}
}

// RecheckAutoConvert converts any balance that became convertible, e.g.
// after the thermal blueprint is unlocked.
func (l *Ledger) RecheckAutoConvert() {
	if !l.autoConvert {
		return
	}
	for _, r := range defs.AllResources {
		l.convertToFit(r)
	}
}

func (l *Ledger) addAmmo(w defs.WeaponType, n int) int {
	limit := l.MaxAmmo(w)
	before := l.ammo[w]
	after := before + n
	if after > limit {
		after = limit
	}
	l.ammo[w] = after
	if after < 0 || after > limit {
		panic(fmt.Sprintf("ledger: %s ammo %d outside [0, %d]", w, after, limit))
	}
	l.emitAmmo(w)
	return after - before
}

func (l *Ledger) emitResource(r defs.ResourceType, delta int) {
	l.dispatcher.Emit(event.ResourceChanged, event.ResourceChangedData{Resource: r, Amount: l.resources[r], Delta: delta})
}

func (l *Ledger) emitAmmo(w defs.WeaponType) {
	l.dispatcher.Emit(event.AmmoChanged, event.AmmoChangedData{Weapon: w, Amount: l.ammo[w], Max: l.MaxAmmo(w)})
}
