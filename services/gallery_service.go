package services

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type GalleryService struct {
	Repo *repository.GalleryRepository
}

func NewGalleryService(repo *repository.GalleryRepository) *GalleryService {
	return &GalleryService{Repo: repo}
}

func (s *GalleryService) List() ([]entity.GalleryItem, error) {
	return s.Repo.FindAll()
}

func (s *GalleryService) Create(g *entity.GalleryItem) error {
	return s.Repo.Create(g)
}

func (s *GalleryService) Update(id uint, in *entity.GalleryItem) (*entity.GalleryItem, error) {
	g, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	g.Title = in.Title
	g.Description = in.Description
	g.Picture = in.Picture
	if err := s.Repo.Update(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GalleryService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *GalleryService) Replace(items []entity.GalleryItem) error {
	return s.Repo.ReplaceAll(items)
}
