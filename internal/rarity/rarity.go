// Package rarity holds the tier weighting tables and the weighted draw
// used by loot box generation and opening. All draws take an explicit
// randomness source so results are reproducible under a fixed seed.
package rarity

import (
	"github.com/gamedesigns/lootcrate/internal/domain"
)

var weights = map[domain.Rarity]float64{
	domain.RarityCommon:    WeightCommon,
	domain.RarityUncommon:  WeightUncommon,
	domain.RarityRare:      WeightRare,
	domain.RarityEpic:      WeightEpic,
	domain.RarityLegendary: WeightLegendary,
}

var multipliers = map[domain.Rarity]float64{
	domain.RarityCommon:    MultCommon,
	domain.RarityUncommon:  MultUncommon,
	domain.RarityRare:      MultRare,
	domain.RarityEpic:      MultEpic,
	domain.RarityLegendary: MultLegendary,
}

// Weight returns the selection weight of a tier. Unknown tiers weigh as Common.
func Weight(r domain.Rarity) float64 {
	if w, ok := weights[r]; ok {
		return w
	}
	return WeightCommon
}

// ValueMultiplier returns the value multiplier of a tier.
// Unknown tiers multiply as Common.
func ValueMultiplier(r domain.Rarity) float64 {
	if m, ok := multipliers[r]; ok {
		return m
	}
	return MultCommon
}

// ScaledValue applies the tier's multiplier to a base value
func ScaledValue(r domain.Rarity, baseValue int) int {
	return int(float64(baseValue) * ValueMultiplier(r))
}

// Draw performs a weighted draw over all tiers using the given source.
// rnd must return values in [0, 1).
func Draw(rnd func() float64) domain.Rarity {
	return DrawWithBonus(rnd, 0)
}

// DrawWithBonus performs a weighted draw with the upper tiers boosted.
// bonus shifts weight from Common toward every higher tier; it is the
// box-rarity skew: a box bonus of n steps moves n*TierBonusStep of the
// total weight share per boosted tier. A bonus of 0 is the plain draw.
func DrawWithBonus(rnd func() float64, bonus int) domain.Rarity {
	total := 0.0
	adjusted := make([]float64, len(domain.Rarities))
	for i, tier := range domain.Rarities {
		w := Weight(tier)
		if bonus > 0 && tier != domain.RarityCommon {
			w += WeightCommon * TierBonusStep * float64(bonus)
		}
		adjusted[i] = w
		total += w
	}

	roll := rnd() * total
	for i, tier := range domain.Rarities {
		roll -= adjusted[i]
		if roll < 0 {
			return tier
		}
	}

	// Guard against rnd() returning exactly 1.0
	return domain.Rarities[len(domain.Rarities)-1]
}

// NextTier returns the tier one step above r; Legendary caps
func NextTier(r domain.Rarity) domain.Rarity {
	ord := r.Ordinal()
	if ord < 0 || ord >= len(domain.Rarities)-1 {
		return r
	}
	return domain.Rarities[ord+1]
}

// BonusSteps returns the box-rarity distance used for the draw bonus:
// the number of tiers the box sits above Common.
func BonusSteps(boxRarity domain.Rarity) int {
	ord := boxRarity.Ordinal()
	if ord < 0 {
		return 0
	}
	return ord
}
