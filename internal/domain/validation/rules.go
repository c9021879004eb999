// Package validation implements entity validators as ordered rule lists.
// Every rule is evaluated (subject to its guard) and every broken rule is
// reported, so one call returns the full set of problems.
//
// Pattern: Specification / Rule Object
// - Each Rule states one business requirement
// - Guards (When) skip rules that only make sense after others pass
// - Repository-backed rules share the same shape as pure ones
package validation

import (
	"context"

	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
)

// Rule is a single validation requirement against a target value.
// Check returns false when the rule is broken. A non-nil error means the
// check itself could not run (e.g. repository failure) and aborts validation.
type Rule[T any] struct {
	Field   string
	Message string
	When    func(target T) bool
	Check   func(ctx context.Context, target T) (bool, error)
}

// RuleSet evaluates rules in declaration order and accumulates failures.
type RuleSet[T any] struct {
	rules []Rule[T]
}

// NewRuleSet builds a rule set from the given rules.
func NewRuleSet[T any](rules ...Rule[T]) *RuleSet[T] {
	return &RuleSet[T]{rules: rules}
}

// Validate runs every applicable rule against the target.
// Returns ValidationErrors listing all broken rules, or the first
// infrastructure error encountered.
func (s *RuleSet[T]) Validate(ctx context.Context, target T) error {
	var errs domainerrors.ValidationErrors
	for _, rule := range s.rules {
		if rule.When != nil && !rule.When(target) {
			continue
		}
		ok, err := rule.Check(ctx, target)
		if err != nil {
			return err
		}
		if !ok {
			errs.Add(rule.Field, rule.Message)
		}
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}
