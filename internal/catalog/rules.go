package catalog

// DiscountTier grants Percentage off the list price once stock reaches MinStock.
type DiscountTier struct {
	MinStock   int
	Percentage int
}

// Rules is the static configuration of the admission and repricing pipeline.
// Components copy what they need at construction, so a Rules value can be
// shared without the pipeline observing later changes to it.
type Rules struct {
	AllowedCategories []string
	PremiumCategories []string
	PremiumMinPrice   float64
	DiscountTiers     []DiscountTier
}

// DefaultRules returns the catalog rules used in production.
func DefaultRules() Rules {
	return Rules{
		AllowedCategories: []string{
			"electronics",
			"clothing",
			"food",
			"books",
			"toys",
			"sports",
			"home",
			"beauty",
		},
		PremiumCategories: []string{"electronics", "beauty"},
		PremiumMinPrice:   50,
		DiscountTiers: []DiscountTier{
			{MinStock: 500, Percentage: 20},
			{MinStock: 100, Percentage: 10},
		},
	}
}
