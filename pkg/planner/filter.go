// Package planner resolves a user's selected and blacklisted course patterns
// against the parsed catalog and computes the sections that remain usable:
// everything that is not blacklisted and does not collide with a pinned
// section.
package planner

import (
	"fmt"
	"strings"

	"github.com/raxod502/hyposchedule/pkg/catalog"
	"github.com/raxod502/hyposchedule/pkg/pattern"
)

// Kinds of selection failure reported by AmbiguousSelectionError.
const (
	KindNoMatch   = "no match"
	KindAmbiguous = "ambiguous match"
)

// AmbiguousSelectionError reports a selection or blacklist pattern that did
// not resolve the way the user needs: a selection must pin exactly one
// section, and a blacklist pattern must remove at least one.
type AmbiguousSelectionError struct {
	Pattern string
	Kind    string
	Matches []catalog.Section // the colliding candidates for an ambiguous match
}

func (e *AmbiguousSelectionError) Error() string {
	if e.Kind == KindAmbiguous {
		refs := make([]string, len(e.Matches))
		for i, s := range e.Matches {
			refs[i] = s.Reference()
		}
		return fmt.Sprintf("pattern %q matches ambiguously: %s", e.Pattern, strings.Join(refs, ", "))
	}
	return fmt.Sprintf("pattern %q matches no sections", e.Pattern)
}

// Filter resolves the selected and blacklisted pattern lines against the
// catalog and returns the surviving sections in catalog order. It is a pure
// function: repeated application with the same patterns is a no-op.
//
// Each selection pattern must match exactly one section; matching zero or
// several is an error the user has to disambiguate. A blacklist pattern may
// match several sections (it means "remove all of these") but matching none
// is still an error, since the user's intent went unsatisfied. Blank lines
// contribute nothing.
func Filter(all []catalog.Section, selectedLines, blacklistedLines []string) ([]catalog.Section, error) {
	selected, err := resolveSelections(all, selectedLines)
	if err != nil {
		return nil, err
	}
	blacklisted, err := resolveBlacklist(all, blacklistedLines)
	if err != nil {
		return nil, err
	}
	return FilterSections(all, selected, blacklisted), nil
}

// FilterSections filters by already-resolved sections instead of pattern
// lines: the interactive planner pins and blacklists concrete sections, so
// it never goes through the user-pattern grammar at all.
func FilterSections(all, selected, blacklisted []catalog.Section) []catalog.Section {
	var surviving []catalog.Section
	for _, s := range all {
		if containsSection(blacklisted, s) {
			continue
		}
		// Pinned sections are kept as-is; they are never conflict-tested,
		// not even against each other.
		if !containsSection(selected, s) && conflictsWithAny(s, selected) {
			continue
		}
		surviving = append(surviving, s)
	}
	return surviving
}

// Selected resolves just the selection pattern lines, returning the pinned
// sections in pattern order. The exporter uses this to build a calendar of
// the user's own schedule rather than the whole surviving catalog.
func Selected(all []catalog.Section, selectedLines []string) ([]catalog.Section, error) {
	return resolveSelections(all, selectedLines)
}

func resolveSelections(all []catalog.Section, lines []string) ([]catalog.Section, error) {
	var selected []catalog.Section
	for _, line := range lines {
		p, err := pattern.Parse(line)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}

		matched := matchingSections(all, p)
		if len(matched) == 0 {
			return nil, &AmbiguousSelectionError{Pattern: strings.TrimSpace(line), Kind: KindNoMatch}
		}
		if len(matched) > 1 {
			return nil, &AmbiguousSelectionError{Pattern: strings.TrimSpace(line), Kind: KindAmbiguous, Matches: matched}
		}
		selected = append(selected, matched[0])
	}
	return selected, nil
}

func resolveBlacklist(all []catalog.Section, lines []string) ([]catalog.Section, error) {
	var blacklisted []catalog.Section
	for _, line := range lines {
		p, err := pattern.Parse(line)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}

		matched := matchingSections(all, p)
		if len(matched) == 0 {
			return nil, &AmbiguousSelectionError{Pattern: strings.TrimSpace(line), Kind: KindNoMatch}
		}
		blacklisted = append(blacklisted, matched...)
	}
	return blacklisted, nil
}

func matchingSections(all []catalog.Section, p *pattern.Pattern) []catalog.Section {
	var matched []catalog.Section
	for _, s := range all {
		if p.Matches(s) {
			matched = append(matched, s)
		}
	}
	return matched
}

func containsSection(sections []catalog.Section, s catalog.Section) bool {
	for _, candidate := range sections {
		if candidate.Equal(s) {
			return true
		}
	}
	return false
}

func conflictsWithAny(s catalog.Section, selected []catalog.Section) bool {
	for _, pinned := range selected {
		if s.ConflictsWith(pinned) {
			return true
		}
	}
	return false
}
