package services

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(category string) ([]entity.MenuItem, error) {
	if category != "" {
		return s.Repo.FindByCategory(category)
	}
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	if item.Name == "" {
		return errors.New("name is required")
	}
	if item.Price < 0 {
		return errors.New("price must not be negative")
	}
	return s.Repo.Create(item)
}

func (s *MenuService) Update(id uint, in *entity.MenuItem) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.Picture = in.Picture
	item.Tags = in.Tags
	item.Active = in.Active
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

// Replace mirrors the admin console's whole-collection save.
func (s *MenuService) Replace(items []entity.MenuItem) error {
	return s.Repo.ReplaceAll(items)
}
