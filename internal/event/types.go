// internal/event/types.go
package event

const (
	ActorSpawned     EventType = "ActorSpawned"
	ActorDamaged     EventType = "ActorDamaged"
	ActorDied        EventType = "ActorDied"
	ShieldBroken     EventType = "ShieldBroken"
	BossSpawned      EventType = "BossSpawned"
	BossPhaseChanged EventType = "BossPhaseChanged"
	BossDefeated     EventType = "BossDefeated"

	PhaseChanged   EventType = "PhaseChanged"
	RunStarted     EventType = "RunStarted"
	LevelStarted   EventType = "LevelStarted"
	LevelCompleted EventType = "LevelCompleted"
	RunSuccess     EventType = "RunSuccess"
	RunFailed      EventType = "RunFailed"
	WaveStarted    EventType = "WaveStarted"
	WaveCompleted  EventType = "WaveCompleted"
	WaveCountdown  EventType = "WaveCountdown"
	Victory        EventType = "Victory"
	Defeat         EventType = "Defeat"

	ResourceChanged EventType = "ResourceChanged"
	AmmoChanged     EventType = "AmmoChanged"
	AmmoEmpty       EventType = "AmmoEmpty"
	WeaponSwitched  EventType = "WeaponSwitched"
	UnlockAcquired  EventType = "UnlockAcquired"
	OrbCollected    EventType = "OrbCollected"
	ShotFired       EventType = "ShotFired"
	PlayerDamaged   EventType = "PlayerDamaged"
)
