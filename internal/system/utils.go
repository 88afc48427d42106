// internal/system/utils.go
package system

import "go-waypoint-defense/internal/component"

// ApplyDamage отнимает урон у врага. Здоровье может уйти в минус:
// смерть определяет CheckAlive по условию <= 0.
func ApplyDamage(e *component.Enemy, damage int) {
	if damage <= 0 {
		return
	}
	e.Health -= damage
}
