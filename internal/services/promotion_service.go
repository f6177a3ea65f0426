package services

import (
	"fmt"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/repository"
)

type PromotionService interface {
	ListPromotions() ([]models.Promotion, error)
	GetPromotion(id uint) (*models.Promotion, error)
	SavePromotion(promotion *models.Promotion) (*models.Promotion, error)
	DeletePromotion(id uint) error
	NewComposer() (*Composer, error)
}

type promotionService struct {
	promotionRepo repository.PromotionRepository
	productRepo   repository.ProductRepository
	groupRepo     repository.GroupRepository
}

func NewPromotionService(promotionRepo repository.PromotionRepository, productRepo repository.ProductRepository, groupRepo repository.GroupRepository) PromotionService {
	return &promotionService{
		promotionRepo: promotionRepo,
		productRepo:   productRepo,
		groupRepo:     groupRepo,
	}
}

func (s *promotionService) ListPromotions() ([]models.Promotion, error) {
	return s.promotionRepo.GetAll()
}

func (s *promotionService) GetPromotion(id uint) (*models.Promotion, error) {
	return s.promotionRepo.GetByID(id)
}

// SavePromotion creates or updates by id presence. An update replaces the
// stored item set with exactly the submitted one. Quantities are normalized
// to integers of at least 1 before persisting.
func (s *promotionService) SavePromotion(promotion *models.Promotion) (*models.Promotion, error) {
	for i := range promotion.Items {
		if promotion.Items[i].Quantity < 1 {
			promotion.Items[i].Quantity = 1
		}
	}

	if promotion.ID == 0 {
		if err := s.promotionRepo.Create(promotion); err != nil {
			return nil, fmt.Errorf("failed to create promotion: %w", err)
		}
	} else {
		if err := s.promotionRepo.Update(promotion); err != nil {
			return nil, fmt.Errorf("failed to update promotion: %w", err)
		}
	}

	return s.promotionRepo.GetByID(promotion.ID)
}

func (s *promotionService) DeletePromotion(id uint) error {
	return s.promotionRepo.Delete(id)
}

// NewComposer loads the full product catalog and group list before any
// composition is allowed.
func (s *promotionService) NewComposer() (*Composer, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	groups, err := s.groupRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	return newComposer(products, groups), nil
}
