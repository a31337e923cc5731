package rarity

// Selection weights. Probability of a tier is weight / sum of all weights.
const (
	WeightCommon    = 60.0
	WeightUncommon  = 25.0
	WeightRare      = 10.0
	WeightEpic      = 4.0
	WeightLegendary = 1.0
)

// Value multipliers applied to an item's base value on creation
const (
	MultCommon    = 1.0
	MultUncommon  = 1.5
	MultRare      = 2.5
	MultEpic      = 5.0
	MultLegendary = 10.0
)

// TierBonusStep is the extra draw weight share granted to tiers above
// Common for each step of the containing box's rarity distance. A Rare
// box makes Rare and better items measurably more likely than a Common
// box does.
const TierBonusStep = 0.03

// CriticalUpgradeChance is the chance that a drawn tier is promoted one
// step on opening (Legendary stays Legendary).
const CriticalUpgradeChance = 0.01
