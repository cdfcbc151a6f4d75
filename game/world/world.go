package world

import (
	"fmt"
	"math"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
)

// State is the player's view of the overworld: where they are and which maps
// they have unlocked. Unlock progress belongs here, not on the catalog.
type State struct {
	Current  string          `json:"current"`
	Unlocked map[string]bool `json:"unlocked"`
}

// NewState starts in the village with only the starter maps open.
func NewState() *State {
	unlocked := make(map[string]bool)
	for id, m := range Maps {
		if m.Starter {
			unlocked[id] = true
		}
	}
	return &State{Current: MapVillage, Unlocked: unlocked}
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	unlocked := make(map[string]bool, len(s.Unlocked))
	for id, v := range s.Unlocked {
		unlocked[id] = v
	}
	return &State{Current: s.Current, Unlocked: unlocked}
}

// IsUnlocked reports whether the map is open to the player.
func (s *State) IsUnlocked(mapID string) bool { return s.Unlocked[mapID] }

// Unlock opens a map. Unlocking an already open map is not an error; the
// returned flag tells whether anything changed.
func (s *State) Unlock(mapID string) (string, bool, error) {
	m, ok := Maps[mapID]
	if !ok {
		return "", false, errs.Newf(errs.KindNotFound, "地图不存在：%s", mapID)
	}
	if s.Unlocked[mapID] {
		return "地图已经解锁", false, nil
	}
	s.Unlocked[mapID] = true
	return fmt.Sprintf("解锁新地图：%s！", m.Name), true, nil
}

// Switch moves the player to another map. The target must exist, be
// unlocked, and accept the player's level; the player enters at the fixed
// entry position.
func (s *State) Switch(p *character.Player, mapID string) (*Map, error) {
	m, ok := Maps[mapID]
	if !ok {
		return nil, errs.Newf(errs.KindNotFound, "地图不存在：%s", mapID)
	}
	if !s.Unlocked[mapID] {
		return nil, errs.Newf(errs.KindState, "该地图尚未解锁！需要达到等级 %d", m.MinLevel)
	}
	if p.Level < m.MinLevel {
		return nil, errs.Newf(errs.KindValidation, "等级不足！需要等级 %d 才能进入%s", m.MinLevel, m.Name)
	}

	s.Current = mapID
	p.Position = character.Position{X: EntryX, Y: EntryY}
	return &m, nil
}

// UpdatePosition moves the player within the current map's bounds.
func UpdatePosition(p *character.Player, x, y int) error {
	if x < 0 || x > MapSize || y < 0 || y > MapSize {
		return errs.New(errs.KindValidation, "位置超出地图范围")
	}
	p.Position.X = x
	p.Position.Y = y
	return nil
}

// PortalAt returns the portal within PortalRadius of the click, if any.
func PortalAt(mapID string, x, y int) (*Portal, bool) {
	m, ok := Maps[mapID]
	if !ok {
		return nil, false
	}
	for i := range m.Portals {
		p := m.Portals[i]
		dist := math.Hypot(float64(x-p.X), float64(y-p.Y))
		if dist <= PortalRadius {
			return &p, true
		}
	}
	return nil, false
}
