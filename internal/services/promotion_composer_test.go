package services

import (
	"restaurant_panel/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func composerFixture() *Composer {
	pizzas := uint(1)
	bebidas := uint(2)
	products := []models.Product{
		{ID: 1, Name: "Pizza Calabresa", Price: 48, GroupID: &pizzas},
		{ID: 2, Name: "Pizza Margherita", Price: 45, GroupID: &pizzas},
		{ID: 3, Name: "Refrigerante Lata", Price: 6, GroupID: &bebidas},
		{ID: 4, Name: "Pudim", Price: 12},
	}
	groups := []models.Group{
		{ID: 1, Name: "Pizzas"},
		{ID: 2, Name: "Bebidas"},
	}
	return newComposer(products, groups)
}

func TestComposerAddItem(t *testing.T) {
	c := composerFixture()

	require.NoError(t, c.AddItem("Pizza Margherita", 40, 1))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza Margherita", items[0].ProductName)
	assert.Equal(t, 40.0, items[0].AdjustedPrice)
}

func TestComposerAddItemDuplicateWithinFilter(t *testing.T) {
	c := composerFixture()
	pizzas := uint(1)
	c.SetGroupFilter(&pizzas)

	require.NoError(t, c.AddItem("Pizza Margherita", 40, 1))
	assert.ErrorIs(t, c.AddItem("Pizza Margherita", 42, 1), ErrDuplicateItem)
}

func TestComposerDuplicateCheckIsNotGlobal(t *testing.T) {
	c := composerFixture()
	require.NoError(t, c.AddItem("Pizza Margherita", 40, 1))

	// With the displayed catalog narrowed to another group, the same name
	// is no longer checked against the working list.
	bebidas := uint(2)
	c.SetGroupFilter(&bebidas)
	assert.NoError(t, c.AddItem("Pizza Margherita", 42, 1))
	assert.Len(t, c.Items(), 2)
}

func TestComposerAddItemNormalizesQuantity(t *testing.T) {
	c := composerFixture()
	require.NoError(t, c.AddItem("Pudim", 12, 0))
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestComposerAddGroupSkipsExistingAndSorts(t *testing.T) {
	c := composerFixture()
	require.NoError(t, c.AddItem("Pizza Margherita", 40, 2))

	require.NoError(t, c.AddGroup(1, nil))

	items := c.Items()
	require.Len(t, items, 2)
	// Sorted by item name, no duplicate for the product already present
	assert.Equal(t, "Pizza Calabresa", items[0].ProductName)
	assert.Equal(t, 48.0, items[0].AdjustedPrice)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "Pizza Margherita", items[1].ProductName)
	assert.Equal(t, 40.0, items[1].AdjustedPrice)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestComposerAddGroupHonorsOverrides(t *testing.T) {
	c := composerFixture()

	price := 39.9
	quantity := 3
	require.NoError(t, c.AddGroup(1, map[string]ItemOverride{
		"Pizza Calabresa": {Price: &price, Quantity: &quantity},
	}))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 39.9, items[0].AdjustedPrice)
	assert.Equal(t, 3, items[0].Quantity)
	// Catalog defaults for rows without overrides
	assert.Equal(t, 45.0, items[1].AdjustedPrice)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestComposerAddGroupUnknown(t *testing.T) {
	c := composerFixture()
	assert.ErrorIs(t, c.AddGroup(99, nil), ErrUnknownGroup)
}

func TestComposerRemoveAndUpdateByIndex(t *testing.T) {
	c := composerFixture()
	require.NoError(t, c.AddItem("Pizza Margherita", 40, 1))
	require.NoError(t, c.AddItem("Pudim", 12, 1))

	require.NoError(t, c.UpdateItem(1, 10, 2))
	assert.Equal(t, 10.0, c.Items()[1].AdjustedPrice)
	assert.Equal(t, 2, c.Items()[1].Quantity)

	require.NoError(t, c.RemoveItem(0))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Pudim", items[0].ProductName)

	assert.ErrorIs(t, c.RemoveItem(5), ErrItemIndex)
	assert.ErrorIs(t, c.UpdateItem(-1, 0, 0), ErrItemIndex)
}

func TestComposerBuild(t *testing.T) {
	c := composerFixture()
	require.NoError(t, c.AddItem("Pizza Margherita", 40, 1))

	fixed := 38.0
	promotion := c.Build(7, "Promoção da Casa", "Margherita em oferta", "Até domingo", &fixed)
	assert.Equal(t, uint(7), promotion.ID)
	assert.Equal(t, "Promoção da Casa", promotion.Name)
	assert.Equal(t, &fixed, promotion.FixedTotal)
	require.Len(t, promotion.Items, 1)
}
