package themify

import (
	"bennypowers.dev/themify/internal/collections"
	"bennypowers.dev/themify/internal/color"
	"bennypowers.dev/themify/internal/log"
	"bennypowers.dev/themify/internal/macro"
)

// ExpandResult lists what an expansion pass touched
type ExpandResult struct {
	// Mutated are the declarations whose value was rewritten in place
	Mutated []Decl
	// Created are the variant rules appended to the tree
	Created []Rule
	// Aggregated counts selectors merged onto source rules
	Aggregated int
}

// Expand rewrites every themed declaration to its default-variation value,
// and for each other variation either scopes the source rule's selector
// list (same value) or appends a variant rule (different value).
// At most one variant rule is created per source rule and variation.
func (t *Themify) Expand(tree Tree) (*ExpandResult, error) {
	result := &ExpandResult{}
	err := tree.WalkRules(func(r Rule) error {
		return t.expandRule(tree, r, result)
	})
	if err != nil {
		return nil, err
	}
	log.Debug("Expanded %d declarations, created %d rules", len(result.Mutated), len(result.Created))
	return result, nil
}

func (t *Themify) expandRule(tree Tree, r Rule, result *ExpandResult) error {
	defaultVariation := t.defaultVariation()
	aggregated := collections.NewOrderedSet[string]()
	variantRules := map[string]Rule{}
	var created []Rule

	for _, d := range r.Decls() {
		if !macro.Contains(d.Value()) {
			continue
		}

		values, err := t.variantValues(d.Value(), color.ModeCSSVar)
		if err != nil {
			return newDeclarationError(r, d, err)
		}

		defaultValue := values[defaultVariation]
		d.SetValue(defaultValue)
		result.Mutated = append(result.Mutated, d)

		for _, variation := range t.nonDefaultVariations() {
			if values[variation] == defaultValue {
				aggregated.Add(t.prefixedSelectors(r, variation)...)
				continue
			}

			variant, ok := variantRules[variation]
			if !ok {
				variant = tree.NewRule(t.prefixedSelectors(r, variation))
				variantRules[variation] = variant
				created = append(created, variant)
			}
			variant.AppendDecl(d.Prop(), values[variation], d.Important())
		}
	}

	if aggregated.Len() > 0 {
		r.SetSelectors(append(r.Selectors(), aggregated.Members()...))
		result.Aggregated += aggregated.Len()
	}

	for _, variant := range created {
		r.AppendSibling(variant)
	}
	result.Created = append(result.Created, created...)
	return nil
}
