package services

import (
	"errors"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/repository"
)

var ErrNegativePrice = errors.New("price must not be negative")

type ProductService interface {
	ListProducts() ([]models.Product, error)
	ListProductsByGroup(groupID uint) ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
	SetProductGroup(productID uint, groupID *uint) (*models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) ListProductsByGroup(groupID uint) ([]models.Product, error) {
	return s.productRepo.GetByGroupID(groupID)
}

func (s *productService) GetProduct(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) CreateProduct(product *models.Product) error {
	if product.Price < 0 {
		return ErrNegativePrice
	}
	return s.productRepo.Create(product)
}

func (s *productService) UpdateProduct(product *models.Product) error {
	if product.Price < 0 {
		return ErrNegativePrice
	}
	return s.productRepo.Update(product)
}

func (s *productService) DeleteProduct(id uint) error {
	return s.productRepo.Delete(id)
}

// SetProductGroup links a product to a group, or unlinks it when groupID is
// nil. The product itself stays in the catalog either way.
func (s *productService) SetProductGroup(productID uint, groupID *uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	product.GroupID = groupID
	product.Group = nil
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(productID)
}
