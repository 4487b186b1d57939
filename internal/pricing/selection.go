package pricing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
)

// ResolveSelection maps the client-supplied option ids onto the product's
// options, preserving the order they were sent in. Ids that belong to none
// of the product's groups are dropped, not rejected.
func ResolveSelection(groups []models.OptionGroup, selectedIDs []uuid.UUID) []models.Option {
	byID := make(map[uuid.UUID]models.Option)
	for _, g := range groups {
		for _, o := range g.Options {
			byID[o.ID] = o
		}
	}

	selected := make([]models.Option, 0, len(selectedIDs))
	for _, id := range selectedIDs {
		if o, ok := byID[id]; ok {
			selected = append(selected, o)
		}
	}
	return selected
}

// ValidateSelection enforces the per-group selection rules and must run
// before pricing; CalculateItemPrice does not re-check them.
//
// A required group demands at least one selection even when minSelect is 0.
// Inactive options count here even though pricing later skips them.
func ValidateSelection(groups []models.OptionGroup, selectedIDs []uuid.UUID) error {
	selected := ResolveSelection(groups, selectedIDs)

	for _, g := range groups {
		count := 0
		for _, o := range selected {
			if o.GroupID == g.ID {
				count++
			}
		}

		min := g.MinSelect
		if g.Required && min < 1 {
			min = 1
		}

		if count < min {
			return fmt.Errorf("%w: %s", ErrMissingRequiredOption, g.Name)
		}
		if count > g.MaxSelect {
			return fmt.Errorf("%w: %s", ErrTooManyOptions, g.Name)
		}
	}
	return nil
}
