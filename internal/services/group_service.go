package services

import (
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/repository"
)

type GroupService interface {
	ListGroups() ([]models.Group, error)
	GetGroup(id uint) (*models.Group, error)
	CreateGroup(group *models.Group) error
	UpdateGroup(group *models.Group) error
	DeleteGroup(id uint) error
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) ListGroups() ([]models.Group, error) {
	return s.groupRepo.GetAll()
}

func (s *groupService) GetGroup(id uint) (*models.Group, error) {
	return s.groupRepo.GetByID(id)
}

func (s *groupService) CreateGroup(group *models.Group) error {
	return s.groupRepo.Create(group)
}

func (s *groupService) UpdateGroup(group *models.Group) error {
	return s.groupRepo.Update(group)
}

func (s *groupService) DeleteGroup(id uint) error {
	return s.groupRepo.Delete(id)
}
