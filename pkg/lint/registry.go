package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/smartgen/pkg/core"
)

// globalRegistry is the single global registry for all rules. It is written
// only from init() functions and read-only afterwards.
var globalRegistry = NewRegistry()

// Registry stores registered rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]RuleDef)}
}

// Register adds a rule. Registering the same ID twice panics.
func (r *Registry) Register(rule RuleDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.rules[rule.ID]; dup {
		panic("lint: duplicate rule id " + rule.ID)
	}
	r.rules[rule.ID] = rule
}

// All returns all rules sorted by ID.
func (r *Registry) All() []RuleDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]RuleDef, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

// ByID returns a rule by its ID.
func (r *Registry) ByID(id string) (RuleDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// ByGroup returns all rules in a group sorted by ID.
func (r *Registry) ByGroup(group string) []RuleDef {
	var rules []RuleDef
	for _, rule := range r.All() {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.Register(rule)
}

// Global returns the registry rule packages register into.
func Global() *Registry {
	return globalRegistry
}

// GetAll returns all registered rules sorted by ID.
func GetAll() []RuleDef {
	return globalRegistry.All()
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	return globalRegistry.ByID(id)
}

// GetByGroup returns all rules in a specific group.
func GetByGroup(group string) []RuleDef {
	return globalRegistry.ByGroup(group)
}

// Count returns the number of registered rules.
func Count() int {
	return globalRegistry.Count()
}

// AllRules returns metadata for all registered rules.
func AllRules() []core.RuleInfo {
	rules := GetAll()
	infos := make([]core.RuleInfo, len(rules))
	for i, r := range rules {
		infos[i] = r.Info()
	}
	return infos
}

// Groups returns the distinct rule groups in ID order of their first rule.
func Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, r := range GetAll() {
		if !seen[r.Group] {
			seen[r.Group] = true
			groups = append(groups, r.Group)
		}
	}
	return groups
}
