package repository

import (
	"restaurant_panel/internal/models"

	"gorm.io/gorm"
)

type PromotionRepository interface {
	Create(promotion *models.Promotion) error
	GetByID(id uint) (*models.Promotion, error)
	GetAll() ([]models.Promotion, error)
	Update(promotion *models.Promotion) error
	Delete(id uint) error
}

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}

func (r *promotionRepository) GetByID(id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.Preload("Items").First(&promotion, id).Error
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) GetAll() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.Preload("Items").Order("criado_em DESC").Find(&promotions).Error
	return promotions, err
}

// Update rewrites the header and replaces the full item set: every stored
// item is deleted and the submitted list inserted fresh. Both steps run in
// one transaction so a failed insert cannot strand the promotion with zero
// items.
func (r *promotionRepository) Update(promotion *models.Promotion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		header := map[string]interface{}{
			"nome":        promotion.Name,
			"descricao":   promotion.Description,
			"validade":    promotion.Validity,
			"valor_total": promotion.FixedTotal,
		}
		result := tx.Model(&models.Promotion{}).Where("id = ?", promotion.ID).Updates(header)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("promocao_id = ?", promotion.ID).Delete(&models.PromotionItem{}).Error; err != nil {
			return err
		}

		if len(promotion.Items) == 0 {
			return nil
		}
		for i := range promotion.Items {
			promotion.Items[i].ID = 0
			promotion.Items[i].PromotionID = promotion.ID
		}
		return tx.Create(&promotion.Items).Error
	})
}

func (r *promotionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promocao_id = ?", id).Delete(&models.PromotionItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Promotion{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
