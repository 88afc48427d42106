// internal/defs/spawns.go
package defs

import (
	"maps"
	"slices"
)

// SpawnCounts maps an enemy type tag to how many of it a level spawns.
type SpawnCounts map[string]int

// Total returns the number of enemies the level spawns.
func (s SpawnCounts) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Expand flattens the counts into a list of repeated type tags.
// Tags are visited in sorted order so the result does not depend on map order.
func (s SpawnCounts) Expand() []string {
	list := make([]string, 0, s.Total())
	for _, tag := range slices.Sorted(maps.Keys(s)) {
		for i := 0; i < s[tag]; i++ {
			list = append(list, tag)
		}
	}
	return list
}
