package catalog

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountPolicy maps a stock quantity to a discount percentage.
type DiscountPolicy struct {
	tiers []DiscountTier
}

// NewDiscountPolicy copies tiers and orders them highest threshold first.
func NewDiscountPolicy(tiers []DiscountTier) *DiscountPolicy {
	sorted := make([]DiscountTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinStock > sorted[j].MinStock
	})
	return &DiscountPolicy{tiers: sorted}
}

// Tier returns the discount percentage for stock, or 0 below every threshold.
func (p *DiscountPolicy) Tier(stock int) int {
	for _, t := range p.tiers {
		if stock >= t.MinStock {
			return t.Percentage
		}
	}
	return 0
}

// Quote is the outcome of applying the stock discount to a list price.
type Quote struct {
	FinalPrice         float64
	DiscountPercentage int
}

// PricingEngine turns a list price and a stock level into a charged price.
type PricingEngine struct {
	policy *DiscountPolicy
}

// NewPricingEngine creates a PricingEngine backed by policy.
func NewPricingEngine(policy *DiscountPolicy) *PricingEngine {
	return &PricingEngine{policy: policy}
}

// Policy returns the discount policy used by the engine.
func (e *PricingEngine) Policy() *DiscountPolicy {
	return e.policy
}

// ApplyDiscount computes listPrice * (1 - tier/100) rounded half-up to cents.
// The arithmetic is done in decimal so that values such as 1.005 round the
// way they read.
func (e *PricingEngine) ApplyDiscount(listPrice float64, stock int) Quote {
	tier := e.policy.Tier(stock)
	final := decimal.NewFromFloat(listPrice).
		Mul(hundred.Sub(decimal.NewFromInt(int64(tier)))).
		Div(hundred).
		Round(2)
	return Quote{
		FinalPrice:         final.InexactFloat64(),
		DiscountPercentage: tier,
	}
}

// ValidateResult rejects quotes that round to zero or below, or that end up
// above the list price.
func (e *PricingEngine) ValidateResult(listPrice float64, q Quote) error {
	final := decimal.NewFromFloat(q.FinalPrice)
	list := decimal.NewFromFloat(listPrice)
	if !final.IsPositive() {
		return fmt.Errorf("%w: a %d%% discount cannot bring the price to zero or below (original price: $%s)",
			ErrNonPositiveDiscountedPrice, q.DiscountPercentage, list.String())
	}
	if final.GreaterThan(list) {
		return fmt.Errorf("%w: final price ($%s) cannot be greater than the original price ($%s)",
			ErrPriceExceedsOriginal, final.StringFixed(2), list.String())
	}
	return nil
}

// Reprice applies the discount for stock to listPrice and validates the result.
func (e *PricingEngine) Reprice(listPrice float64, stock int) (Quote, error) {
	q := e.ApplyDiscount(listPrice, stock)
	if err := e.ValidateResult(listPrice, q); err != nil {
		return Quote{}, err
	}
	return q, nil
}
