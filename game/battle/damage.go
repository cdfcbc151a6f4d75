package battle

import (
	"math/rand"
	"time"
)

// Source is the random source the AI draws from. *rand.Rand satisfies it;
// tests inject a fixed source to force every branch.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a seeded math/rand source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func defaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Damage is the single damage formula used by basic attacks and, after
// attack scaling, by boss specials: max(1, attack − defense). The minimum-1
// floor keeps combat progressing no matter how high the defense.
func Damage(attack, defense int) int {
	dmg := attack - defense
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}
