package axnode

import (
	"fmt"
	"strings"
)

// Trait is a bitmask of role and state tags carried by a node, mirroring
// how accessibility layers expose element semantics to assistive tech.
type Trait uint64

const (
	TraitNone Trait = 0

	TraitButton Trait = 1 << iota
	TraitLink
	TraitHeader
	TraitSearchField
	TraitImage
	TraitStaticText
	TraitSummaryElement
	TraitNotEnabled
	TraitSelected
	TraitPlaysSound
	TraitKeyboardKey
	TraitUpdatesFrequently
	TraitAdjustable
	TraitAllowsDirectInteraction
	TraitCausesPageTurn
	TraitTabBar
	TraitToggleButton
)

// traitNames maps each single trait bit to its canonical name. Order is
// fixed so Names() output is stable.
var traitNames = []struct {
	trait Trait
	name  string
}{
	{TraitButton, "button"},
	{TraitLink, "link"},
	{TraitHeader, "header"},
	{TraitSearchField, "search-field"},
	{TraitImage, "image"},
	{TraitStaticText, "static-text"},
	{TraitSummaryElement, "summary-element"},
	{TraitNotEnabled, "not-enabled"},
	{TraitSelected, "selected"},
	{TraitPlaysSound, "plays-sound"},
	{TraitKeyboardKey, "keyboard-key"},
	{TraitUpdatesFrequently, "updates-frequently"},
	{TraitAdjustable, "adjustable"},
	{TraitAllowsDirectInteraction, "allows-direct-interaction"},
	{TraitCausesPageTurn, "causes-page-turn"},
	{TraitTabBar, "tab-bar"},
	{TraitToggleButton, "toggle-button"},
}

// Has reports whether every bit of other is present in t.
func (t Trait) Has(other Trait) bool {
	return t&other == other
}

// Add returns t with the bits of other set.
func (t Trait) Add(other Trait) Trait {
	return t | other
}

// Remove returns t with the bits of other cleared.
func (t Trait) Remove(other Trait) Trait {
	return t &^ other
}

// Names returns the canonical names of all trait bits set in t, in a
// stable order.
func (t Trait) Names() []string {
	var names []string
	for _, entry := range traitNames {
		if t.Has(entry.trait) {
			names = append(names, entry.name)
		}
	}
	return names
}

// String renders the trait set as a comma-separated name list, or "none".
func (t Trait) String() string {
	names := t.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseTrait resolves a canonical trait name to its bit. Unknown names
// are an error so snapshot files and query expressions fail loudly.
func ParseTrait(name string) (Trait, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range traitNames {
		if entry.name == needle {
			return entry.trait, nil
		}
	}
	return TraitNone, fmt.Errorf("unknown trait %q", name)
}

// ParseTraits resolves a list of names into a combined trait set.
func ParseTraits(names []string) (Trait, error) {
	traits := TraitNone
	for _, name := range names {
		t, err := ParseTrait(name)
		if err != nil {
			return TraitNone, err
		}
		traits = traits.Add(t)
	}
	return traits, nil
}
