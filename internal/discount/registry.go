package discount

import (
	"fmt"

	validator "github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/noah-isme/backend-till/internal/registry"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Registry is the read-only discount rule set keyed by SKU.
type Registry struct {
	table *registry.Table[int64, Rule]
	order []int64
}

// NewRegistry builds a rule registry. Rules are validated so a threshold
// below 1 can never enter the pricing arithmetic.
func NewRegistry(rules []Rule) (*Registry, error) {
	values := make(map[int64]Rule, len(rules))
	order := make([]int64, 0, len(rules))
	for _, rule := range rules {
		if err := validate.Struct(rule); err != nil {
			return nil, fmt.Errorf("discount: invalid rule sku=%d: %w", rule.SKU, err)
		}
		if _, exists := values[rule.SKU]; exists {
			return nil, fmt.Errorf("discount: duplicate rule for sku %d", rule.SKU)
		}
		values[rule.SKU] = rule
		order = append(order, rule.SKU)
	}
	return &Registry{table: registry.New(values, NoDiscount), order: order}, nil
}

// RuleOrDefault returns the rule for sku, or NoDiscount when absent.
// It never fails.
func (r *Registry) RuleOrDefault(sku int64) Rule {
	if r == nil {
		return NoDiscount
	}
	return r.table.GetOrDefault(sku)
}

// Rules lists registered rules in load order.
func (r *Registry) Rules() []Rule {
	if r == nil {
		return nil
	}
	rules := make([]Rule, 0, len(r.order))
	for _, sku := range r.order {
		rules = append(rules, r.table.GetOrDefault(sku))
	}
	return rules
}

// Len reports the number of registered rules.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.table.Len()
}

type rulesFile struct {
	Rules []Rule `koanf:"rules"`
}

// Load reads a discount rules JSON document from path and builds the registry.
func Load(path string) (*Registry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("discount: load %s: %w", path, err)
	}
	var doc rulesFile
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("discount: parse %s: %w", path, err)
	}
	return NewRegistry(doc.Rules)
}
