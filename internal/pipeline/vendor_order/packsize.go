package vendor_order

import (
	"sort"
	"strings"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

type packEntry struct {
	pattern string
	rule    domain.PackSizeRule
}

// PackNormalizer rounds suggested quantities up to whole vendor units.
type PackNormalizer struct {
	declared []packEntry
	longest  []packEntry
}

// NewPackNormalizer indexes rules. Rules with a blank pattern or a non-positive pack size are ignored.
func NewPackNormalizer(rules []domain.PackSizeRule) *PackNormalizer {
	n := &PackNormalizer{declared: make([]packEntry, 0, len(rules))}
	for _, r := range rules {
		p := normalizeKey(r.ItemPattern)
		if p == "" || r.PackSize <= 0 {
			continue
		}
		n.declared = append(n.declared, packEntry{pattern: p, rule: r})
	}

	n.longest = make([]packEntry, len(n.declared))
	copy(n.longest, n.declared)
	// stable so equal-length patterns keep declared order
	sort.SliceStable(n.longest, func(i, j int) bool {
		return len(n.longest[i].pattern) > len(n.longest[j].pattern)
	})
	return n
}

// Match finds the rule for itemName: exact pattern first, then the longest contained pattern.
func (n *PackNormalizer) Match(itemName string) (domain.PackSizeRule, bool) {
	name := normalizeKey(itemName)
	if name == "" {
		return domain.PackSizeRule{}, false
	}

	for _, e := range n.declared {
		if e.pattern == name {
			return e.rule, true
		}
	}
	for _, e := range n.longest {
		if strings.Contains(name, e.pattern) {
			return e.rule, true
		}
	}
	return domain.PackSizeRule{}, false
}

// Normalize converts a raw piece quantity into whole units of the matched pack.
func (n *PackNormalizer) Normalize(itemName string, raw int) PackResult {
	if raw < 0 {
		raw = 0
	}

	rule, ok := n.Match(itemName)
	if !ok {
		return PackResult{PackSize: 1, Units: raw, Pieces: raw}
	}

	units := (raw + rule.PackSize - 1) / rule.PackSize
	return PackResult{
		PackSize: rule.PackSize,
		UnitName: rule.UnitName,
		Units:    units,
		Pieces:   units * rule.PackSize,
		Matched:  true,
	}
}
