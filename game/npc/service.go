package npc

import (
	"fmt"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/junyi0906/immortal-cultivation-game/game/quest"
)

// DialogOption is one choice offered to the player.
type DialogOption struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// Dialog is what an NPC says when clicked.
type Dialog struct {
	NPC     string         `json:"npc"`
	Text    string         `json:"text"`
	Options []DialogOption `json:"options"`
}

// GenerateDialog builds the dialog an NPC opens with for this player.
func GenerateDialog(npcID string, p *character.Player) (*Dialog, error) {
	n, ok := NPCs[npcID]
	if !ok {
		return nil, errs.Newf(errs.KindNotFound, "NPC 不存在：%s", npcID)
	}

	switch npcID {
	case VillageChief:
		className := p.ClassName
		if className == "" {
			className = "修仙者"
		}
		return &Dialog{
			NPC:  n.Name,
			Text: fmt.Sprintf("欢迎来到青木村，年轻的%s。你需要什么帮助吗？", className),
			Options: []DialogOption{
				{Text: "我想接任务", Action: "task"},
				{Text: "完成任务", Action: "complete_task"},
				{Text: "再见", Action: "close"},
			},
		}, nil
	case Blacksmith:
		return &Dialog{
			NPC:  n.Name,
			Text: "你好！想买点什么？我这里有最好的武器和护甲！",
			Options: []DialogOption{
				{Text: "购买装备", Action: "shop"},
				{Text: "修理装备", Action: "repair"},
				{Text: "再见", Action: "close"},
			},
		}, nil
	case Herbalist:
		return &Dialog{
			NPC:  n.Name,
			Text: "你好！需要药水吗？我的药水可以治愈你的伤势。",
			Options: []DialogOption{
				{Text: "购买药水", Action: "shop"},
				{Text: "再见", Action: "close"},
			},
		}, nil
	case Immortal:
		return &Dialog{
			NPC:  n.Name,
			Text: "你好，年轻的修仙者。你想学习新的技能吗？",
			Options: []DialogOption{
				{Text: "学习技能", Action: "learn_skill"},
				{Text: "再见", Action: "close"},
			},
		}, nil
	}

	return &Dialog{
		NPC:     n.Name,
		Text:    fmt.Sprintf("你好，我是%s。", n.Name),
		Options: []DialogOption{{Text: "再见", Action: "close"}},
	}, nil
}

// AssignTask hands out a catalog task. The same task cannot be accepted
// twice; the caller appends the returned task to the player's list.
func AssignTask(taskID string, existing []quest.Task) (quest.Task, string, error) {
	t, err := quest.ByID(taskID)
	if err != nil {
		return quest.Task{}, "", err
	}
	if _, ok := quest.Find(existing, taskID); ok {
		return quest.Task{}, "", errs.New(errs.KindState, "你已经接受了这个任务")
	}
	return t, fmt.Sprintf("你接受了任务：%s", t.Title), nil
}

// TaskValidation is the answer of ValidateTask.
type TaskValidation struct {
	Valid   bool          `json:"valid"`
	Message string        `json:"message"`
	Rewards quest.Rewards `json:"rewards,omitempty"`
}

// ValidateTask checks whether a task in the player's list may be turned in.
func ValidateTask(taskID string, tasks []quest.Task) (TaskValidation, error) {
	i, ok := quest.Find(tasks, taskID)
	if !ok {
		return TaskValidation{}, errs.Newf(errs.KindNotFound, "任务不存在：%s", taskID)
	}
	t := tasks[i]
	if !t.Fulfilled() {
		return TaskValidation{Message: fmt.Sprintf("任务进度：%d/%d", t.Progress, t.Count)}, nil
	}
	return TaskValidation{Valid: true, Message: "任务已完成！", Rewards: t.Rewards}, nil
}

// ShopItems lists the stock of a shopkeeper.
func ShopItems(npcID string) ([]ShopItem, error) {
	shop, ok := Shops[npcID]
	if !ok {
		return nil, errs.Newf(errs.KindNotFound, "商店不存在：%s", npcID)
	}
	return shop.Items, nil
}

// Purchase is a completed shop transaction.
type Purchase struct {
	Item    ShopItem `json:"item"`
	Cost    int      `json:"cost"`
	Message string   `json:"message"`
}

// Buy sells an item to the player: gold is deducted and the item id goes to
// the inventory. The player is untouched when the purchase fails.
func Buy(p *character.Player, npcID, itemID string) (*Purchase, error) {
	shop, ok := Shops[npcID]
	if !ok {
		return nil, errs.Newf(errs.KindNotFound, "商店不存在：%s", npcID)
	}

	var item *ShopItem
	for i := range shop.Items {
		if shop.Items[i].ID == itemID {
			item = &shop.Items[i]
			break
		}
	}
	if item == nil {
		return nil, errs.Newf(errs.KindNotFound, "物品不存在：%s", itemID)
	}
	if p.Gold < item.Price {
		return nil, errs.New(errs.KindResource, "金币不足")
	}

	p.Gold -= item.Price
	p.Inventory = append(p.Inventory, item.ID)
	return &Purchase{
		Item:    *item,
		Cost:    item.Price,
		Message: fmt.Sprintf("购买了 %s", item.Name),
	}, nil
}

// UseItem consumes an inventory item, applying its restore effect. Only
// consumables can be used.
func UseItem(p *character.Player, itemID string) (string, error) {
	idx := -1
	for i, id := range p.Inventory {
		if id == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", errs.Newf(errs.KindNotFound, "背包中没有该物品：%s", itemID)
	}

	var item *ShopItem
	for _, shop := range Shops {
		for i := range shop.Items {
			if shop.Items[i].ID == itemID {
				item = &shop.Items[i]
			}
		}
	}
	if item == nil || item.Type != "consumable" {
		return "", errs.New(errs.KindValidation, "该物品无法使用")
	}

	p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
	p.ApplyHP(item.Effect.HP)
	p.ApplyMP(item.Effect.MP)
	return fmt.Sprintf("使用了 %s", item.Name), nil
}
