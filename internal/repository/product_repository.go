package repository

import (
	"restaurant_panel/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetByGroupID(groupID uint) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Group").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("nome ASC").Find(&products).Error
	return products, err
}

// GetByGroupID joins the group so callers get the group name alongside each
// product, mirroring the product-with-group projection of the panel.
func (r *productRepository) GetByGroupID(groupID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Group").Where("grupo_id = ?", groupID).Order("nome ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	// Save with a map so a nil group reference (unlink) is written instead
	// of being skipped as a zero value.
	return r.db.Model(&models.Product{ID: product.ID}).Updates(map[string]interface{}{
		"nome":       product.Name,
		"descricao":  product.Description,
		"preco":      product.Price,
		"imagem_url": product.ImageURL,
		"disponivel": product.Available,
		"grupo_id":   product.GroupID,
	}).Error
}

func (r *productRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
