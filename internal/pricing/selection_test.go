package pricing_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/pricing"
)

func group(name string, required bool, minSel, maxSel int, opts ...models.Option) models.OptionGroup {
	g := models.OptionGroup{ID: uuid.New(), Name: name, Required: required, MinSelect: minSel, MaxSelect: maxSel}
	for i := range opts {
		opts[i].GroupID = g.ID
	}
	g.Options = opts
	return g
}

func opt(name string) models.Option {
	return models.Option{ID: uuid.New(), Name: name, Active: true, ModifierType: models.ModifierFixedCents}
}

func TestValidateSelection_RequiredGroupTreatsZeroMinAsOne(t *testing.T) {
	g := group("Acabamento", true, 0, 2, opt("bastão"), opt("ilhós"))

	err := pricing.ValidateSelection([]models.OptionGroup{g}, nil)
	require.ErrorIs(t, err, pricing.ErrMissingRequiredOption)
	require.Contains(t, err.Error(), "Acabamento")

	err = pricing.ValidateSelection([]models.OptionGroup{g}, []uuid.UUID{g.Options[0].ID})
	require.NoError(t, err)
}

func TestValidateSelection_MaxSelectExceeded(t *testing.T) {
	g := group("Extras", false, 0, 1, opt("verniz"), opt("laminação"))

	err := pricing.ValidateSelection([]models.OptionGroup{g}, []uuid.UUID{g.Options[0].ID, g.Options[1].ID})
	require.ErrorIs(t, err, pricing.ErrTooManyOptions)
}

func TestValidateSelection_OptionalGroupAllowsEmpty(t *testing.T) {
	g := group("Extras", false, 0, 3, opt("verniz"))

	require.NoError(t, pricing.ValidateSelection([]models.OptionGroup{g}, nil))
}

func TestValidateSelection_UnknownIDsSilentlyDropped(t *testing.T) {
	g := group("Extras", false, 0, 1, opt("verniz"))

	// a foreign id does not count toward any group
	err := pricing.ValidateSelection([]models.OptionGroup{g}, []uuid.UUID{uuid.New(), g.Options[0].ID})
	require.NoError(t, err)
}

func TestValidateSelection_InactiveOptionStillCounts(t *testing.T) {
	inactive := opt("descontinuado")
	inactive.Active = false
	g := group("Acabamento", true, 1, 1, inactive)

	// inactive satisfies the required minimum here even though pricing skips it
	require.NoError(t, pricing.ValidateSelection([]models.OptionGroup{g}, []uuid.UUID{g.Options[0].ID}))
}

func TestResolveSelection_PreservesClientOrder(t *testing.T) {
	a, b := opt("a"), opt("b")
	g := group("Extras", false, 0, 2, a, b)

	got := pricing.ResolveSelection([]models.OptionGroup{g}, []uuid.UUID{b.ID, a.ID})
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].Name)
	require.Equal(t, "a", got[1].Name)
}
