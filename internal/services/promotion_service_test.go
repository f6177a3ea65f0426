package services

import (
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestPromotionService(t *testing.T, db *gorm.DB) PromotionService {
	t.Helper()
	return NewPromotionService(
		repository.NewPromotionRepository(db),
		repository.NewProductRepository(db),
		repository.NewGroupRepository(db),
	)
}

func TestSavePromotionCreates(t *testing.T) {
	db := setupTestDB(t)
	service := newTestPromotionService(t, db)

	saved, err := service.SavePromotion(&models.Promotion{
		Name: "Combo Pizza",
		Items: []models.PromotionItem{
			{ProductName: "Pizza Margherita", AdjustedPrice: 40, Quantity: 1},
			{ProductName: "Refrigerante Lata", AdjustedPrice: 5, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Len(t, saved.Items, 2)
}

func TestSavePromotionUpdateReplacesItemSet(t *testing.T) {
	db := setupTestDB(t)
	service := newTestPromotionService(t, db)

	saved, err := service.SavePromotion(&models.Promotion{
		Name: "Combo Antigo",
		Items: []models.PromotionItem{
			{ProductName: "Pizza Margherita", AdjustedPrice: 40, Quantity: 1},
			{ProductName: "Refrigerante Lata", AdjustedPrice: 5, Quantity: 2},
			{ProductName: "Pudim", AdjustedPrice: 10, Quantity: 1},
		},
	})
	require.NoError(t, err)

	updated, err := service.SavePromotion(&models.Promotion{
		ID:   saved.ID,
		Name: "Combo Novo",
		Items: []models.PromotionItem{
			{ProductName: "Suco Natural", AdjustedPrice: 8, Quantity: 3},
		},
	})
	require.NoError(t, err)

	// Read back: exactly the submitted set, not a union with the prior one
	reloaded, err := service.GetPromotion(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Combo Novo", reloaded.Name)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "Suco Natural", reloaded.Items[0].ProductName)
	assert.Equal(t, 8.0, reloaded.Items[0].AdjustedPrice)
	assert.Equal(t, 3, reloaded.Items[0].Quantity)
	assert.Len(t, updated.Items, 1)

	// No orphaned items left in the table
	var count int64
	require.NoError(t, db.Model(&models.PromotionItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSavePromotionNormalizesQuantities(t *testing.T) {
	db := setupTestDB(t)
	service := newTestPromotionService(t, db)

	saved, err := service.SavePromotion(&models.Promotion{
		Name: "Combo",
		Items: []models.PromotionItem{
			{ProductName: "Pizza", AdjustedPrice: 40, Quantity: 0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Items[0].Quantity)
}

func TestUpdatePromotionNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newTestPromotionService(t, db)

	_, err := service.SavePromotion(&models.Promotion{ID: 999, Name: "Fantasma"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletePromotionRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	service := newTestPromotionService(t, db)

	saved, err := service.SavePromotion(&models.Promotion{
		Name: "Combo",
		Items: []models.PromotionItem{
			{ProductName: "Pizza", AdjustedPrice: 40, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeletePromotion(saved.ID))

	_, err = service.GetPromotion(saved.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.PromotionItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
