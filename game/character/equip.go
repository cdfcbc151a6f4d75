package character

import (
	"fmt"

	"github.com/junyi0906/immortal-cultivation-game/errs"
)

// ItemStats is the combat bonus an equippable item grants.
type ItemStats struct {
	Attack  int
	Defense int
}

// Slot ids for Equip.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotAccessory = "accessory"
)

// Equip puts itemID into the given slot, returning any previous item to the
// inventory and removing the new item from it. Attack/defense are recomputed
// from the full equipment set so re-equipping never double-counts a bonus.
func (p *Player) Equip(slot, itemID string, items map[string]ItemStats) (string, error) {
	var current *string
	switch slot {
	case SlotWeapon:
		current = &p.Equipment.Weapon
	case SlotArmor:
		current = &p.Equipment.Armor
	case SlotAccessory:
		current = &p.Equipment.Accessory
	default:
		return "", errs.Newf(errs.KindValidation, "无效的装备栏：%s", slot)
	}

	oldAtk, oldDef := p.equipmentBonus(items)

	if *current != "" {
		p.Inventory = append(p.Inventory, *current)
	}
	for i, id := range p.Inventory {
		if id == itemID {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			break
		}
	}
	*current = itemID

	newAtk, newDef := p.equipmentBonus(items)
	p.Attack += newAtk - oldAtk
	p.Defense += newDef - oldDef

	return fmt.Sprintf("装备了 %s", itemID), nil
}

// equipmentBonus sums the stat bonuses of every equipped item.
func (p *Player) equipmentBonus(items map[string]ItemStats) (attack, defense int) {
	for _, id := range []string{p.Equipment.Weapon, p.Equipment.Armor, p.Equipment.Accessory} {
		if id == "" {
			continue
		}
		if item, ok := items[id]; ok {
			attack += item.Attack
			defense += item.Defense
		}
	}
	return attack, defense
}
