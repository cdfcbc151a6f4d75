package skill

// Ledger tracks remaining cooldown turns per skill id. A missing entry means
// the skill is ready.
type Ledger map[string]int

// NewLedger returns an empty cooldown ledger.
func NewLedger() Ledger { return Ledger{} }

// Get returns the remaining cooldown for skillID, 0 when ready.
func (l Ledger) Get(skillID string) int { return l[skillID] }

// Set records cooldown turns for skillID.
func (l Ledger) Set(skillID string, turns int) { l[skillID] = turns }

// Tick advances one turn: every positive cooldown drops by one, never below
// zero.
func (l Ledger) Tick() {
	for id, cd := range l {
		if cd > 0 {
			l[id] = cd - 1
		}
	}
}

// Reset clears all cooldowns.
func (l Ledger) Reset() {
	for id := range l {
		delete(l, id)
	}
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for id, cd := range l {
		out[id] = cd
	}
	return out
}
