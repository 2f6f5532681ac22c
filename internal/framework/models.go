package framework

// ID identifies a compliance framework.
type ID string

// Tier is a graduated implementation group within a tiered framework.
// Tiers have strict containment: ig1 ⊆ ig2 ⊆ ig3.
type Tier string

const (
	TierIG1 Tier = "ig1"
	TierIG2 Tier = "ig2"
	TierIG3 Tier = "ig3"
)

// Framework is immutable reference data describing one compliance standard.
type Framework struct {
	ID   ID
	Name string

	// Tiers lists the framework's implementation groups in containment
	// order. Empty for frameworks without a tier axis.
	Tiers []Tier
}

// Tiered reports whether the framework declares a tier axis.
func (f Framework) Tiered() bool {
	return len(f.Tiers) > 0
}

// Selection is a user's framework choice for one request: enabled flags plus
// one optional tier value consumed only by tiered frameworks. Never persisted.
type Selection struct {
	Enabled map[ID]bool
	Tier    Tier
}

// Empty reports whether no framework is enabled. An empty selection is a
// valid state, not an error.
func (s Selection) Empty() bool {
	for _, on := range s.Enabled {
		if on {
			return false
		}
	}
	return true
}

// ActiveFramework is one resolved entry of an ActiveSet: a framework plus the
// concrete tiers it contributes. Nil Tiers means no tier constraint (the
// framework's full catalog).
type ActiveFramework struct {
	ID    ID
	Tiers []Tier
}

// includesTier reports whether a control tagged with the given tier passes
// this entry's tier filter. Controls of untiered frameworks carry an empty
// tier and always pass.
func (a ActiveFramework) includesTier(tier Tier) bool {
	if a.Tiers == nil || tier == "" {
		return true
	}
	for _, t := range a.Tiers {
		if t == tier {
			return true
		}
	}
	return false
}
