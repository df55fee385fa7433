package services

import (
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type ReviewService struct {
	Repo   *repository.ReviewRepository
	Notify *NotifyService
}

func NewReviewService(repo *repository.ReviewRepository, notify *NotifyService) *ReviewService {
	return &ReviewService{Repo: repo, Notify: notify}
}

type CreateReviewIn struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Picture string `json:"image"`
}

// Create stores a public submission. Reviews always start pending; the
// storefront never shows them until an admin approves.
func (s *ReviewService) Create(in *CreateReviewIn) (*entity.Review, error) {
	rv := &entity.Review{
		Name:    in.Name,
		Role:    in.Role,
		Content: in.Content,
		Rating:  in.Rating,
		Picture: in.Picture,
		Date:    time.Now().Format("2006-01-02"),
		Status:  entity.ReviewPending,
		Active:  true,
	}
	if err := s.Repo.Create(rv); err != nil {
		return nil, err
	}

	s.Notify.ReviewSubmitted(rv)
	return rv, nil
}

// ListPublic: approved AND active only.
func (s *ReviewService) ListPublic() ([]entity.Review, error) {
	return s.Repo.FindVisible()
}

func (s *ReviewService) ListAll() ([]entity.Review, error) {
	return s.Repo.FindAll()
}

func (s *ReviewService) UpdateStatus(id uint, status string) (*entity.Review, error) {
	if !entity.ValidReviewStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// SetActive toggles visibility independently of the moderation status.
func (s *ReviewService) SetActive(id uint, active bool) (*entity.Review, error) {
	rv, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	rv.Active = active
	if err := s.Repo.Update(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *ReviewService) Replace(reviews []entity.Review) error {
	return s.Repo.ReplaceAll(reviews)
}
