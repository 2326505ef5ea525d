package catalog

import (
	"fmt"
	"strings"
	"time"
)

const (
	skuNameLen     = 4
	skuCategoryLen = 3
	skuGeneric     = "GEN"
	skuPad         = 'X'
)

// SkuGenerator derives human-readable product tags of the form
// CAT-NAME-NNNNNN. The numeric suffix is the last six digits of the clock in
// milliseconds, so two products created in the same millisecond with similar
// names can collide; the store's unique index on sku catches that.
type SkuGenerator struct {
	now func() time.Time
}

// NewSkuGenerator returns a generator reading the given clock. A nil clock
// means time.Now.
func NewSkuGenerator(now func() time.Time) *SkuGenerator {
	if now == nil {
		now = time.Now
	}
	return &SkuGenerator{now: now}
}

// Generate builds the SKU for a product name and an already normalized
// category (empty for none).
func (g *SkuGenerator) Generate(name, category string) string {
	namePrefix := padPrefix(alnumUpper(name), skuNameLen)

	categoryPrefix := skuGeneric
	if category != "" {
		categoryPrefix = padPrefix(strings.ToUpper(category), skuCategoryLen)
	}

	suffix := g.now().UnixMilli() % 1_000_000
	return fmt.Sprintf("%s-%s-%06d", categoryPrefix, namePrefix, suffix)
}

func alnumUpper(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// padPrefix truncates s to n runes and right-pads it with X.
func padPrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	for len(runes) < n {
		runes = append(runes, skuPad)
	}
	return string(runes)
}
