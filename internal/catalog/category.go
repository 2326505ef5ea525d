package catalog

import (
	"fmt"
	"strings"
)

// CategoryCatalog holds the permitted category names and the subset of
// premium categories that carry a price floor. Lookups are case-insensitive.
type CategoryCatalog struct {
	allowed         []string
	allowedSet      map[string]struct{}
	premiumSet      map[string]struct{}
	premiumMinPrice float64
}

// NewCategoryCatalog builds a catalog from the category lists in rules.
func NewCategoryCatalog(rules Rules) *CategoryCatalog {
	c := &CategoryCatalog{
		allowed:         make([]string, 0, len(rules.AllowedCategories)),
		allowedSet:      make(map[string]struct{}, len(rules.AllowedCategories)),
		premiumSet:      make(map[string]struct{}, len(rules.PremiumCategories)),
		premiumMinPrice: rules.PremiumMinPrice,
	}
	for _, name := range rules.AllowedCategories {
		name = strings.ToLower(name)
		if _, dup := c.allowedSet[name]; dup {
			continue
		}
		c.allowed = append(c.allowed, name)
		c.allowedSet[name] = struct{}{}
	}
	for _, name := range rules.PremiumCategories {
		c.premiumSet[strings.ToLower(name)] = struct{}{}
	}
	return c
}

// Allowed returns the permitted category names in configuration order.
func (c *CategoryCatalog) Allowed() []string {
	out := make([]string, len(c.allowed))
	copy(out, c.allowed)
	return out
}

// Normalize returns the stored form of a category name.
func (c *CategoryCatalog) Normalize(category string) string {
	return strings.ToLower(category)
}

// Validate accepts an empty category as "no category". Any other value must
// be one of the allowed names, ignoring case.
func (c *CategoryCatalog) Validate(category string) error {
	if category == "" {
		return nil
	}
	if _, ok := c.allowedSet[strings.ToLower(category)]; !ok {
		return fmt.Errorf("%w: category '%s' is not allowed. Allowed categories: %s",
			ErrInvalidCategory, category, strings.Join(c.allowed, ", "))
	}
	return nil
}

// IsPremium reports whether category carries a minimum price.
func (c *CategoryCatalog) IsPremium(category string) bool {
	if category == "" {
		return false
	}
	_, ok := c.premiumSet[strings.ToLower(category)]
	return ok
}

// ValidatePremiumPrice rejects prices strictly below the premium floor for
// premium categories. The floor itself is accepted.
func (c *CategoryCatalog) ValidatePremiumPrice(category string, price float64) error {
	if !c.IsPremium(category) {
		return nil
	}
	if price < c.premiumMinPrice {
		return fmt.Errorf("%w: products in category '%s' require a minimum price of $%g",
			ErrPremiumPriceTooLow, category, c.premiumMinPrice)
	}
	return nil
}
