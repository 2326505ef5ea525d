package catalog

import "fmt"

// Pipeline runs the admission checks applied to every product write:
// category, then premium price floor, then stock sign. Pricing is exposed
// separately because updates only reprice when price or stock change.
type Pipeline struct {
	categories *CategoryCatalog
	pricing    *PricingEngine
}

// NewPipeline wires a pipeline from rules.
func NewPipeline(rules Rules) *Pipeline {
	return &Pipeline{
		categories: NewCategoryCatalog(rules),
		pricing:    NewPricingEngine(NewDiscountPolicy(rules.DiscountTiers)),
	}
}

// Categories returns the category catalog used by the pipeline.
func (p *Pipeline) Categories() *CategoryCatalog {
	return p.categories
}

// Pricing returns the pricing engine used by the pipeline.
func (p *Pipeline) Pricing() *PricingEngine {
	return p.pricing
}

// ValidateCategory checks category membership.
func (p *Pipeline) ValidateCategory(category string) error {
	return p.categories.Validate(category)
}

// ValidatePremiumPrice checks the premium floor for category and price.
func (p *Pipeline) ValidatePremiumPrice(category string, price float64) error {
	return p.categories.ValidatePremiumPrice(category, price)
}

// ValidateStock rejects negative quantities.
func (p *Pipeline) ValidateStock(stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative (got %d)", ErrNegativeStock, stock)
	}
	return nil
}

// Admit validates a new product and prices it. Checks run in a fixed order
// and the first failure is returned.
func (p *Pipeline) Admit(category string, listPrice float64, stock int) (Quote, error) {
	if err := p.ValidateCategory(category); err != nil {
		return Quote{}, err
	}
	if err := p.ValidatePremiumPrice(category, listPrice); err != nil {
		return Quote{}, err
	}
	if err := p.ValidateStock(stock); err != nil {
		return Quote{}, err
	}
	return p.pricing.Reprice(listPrice, stock)
}
