package service

import (
	"context"
	"fmt"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
)

type CategoryService interface {
	Create(ctx context.Context, actorID uuid.UUID, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	List(ctx context.Context, filter dto.CategoryFilter) (*dto.CategoryListResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	ListAll(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	repo     repository.CategoryRepository
	activity ActivityRecorder
}

func NewCategoryService(repo repository.CategoryRepository, activity ActivityRecorder) CategoryService {
	return &categoryService{repo: repo, activity: activity}
}

func (s *categoryService) Create(ctx context.Context, actorID uuid.UUID, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: une catégorie '%s' existe déjà", ErrConflict, req.Name)
		}
		return nil, err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Catégorie '%s' créée", category.Name), model.LevelSuccess, "tags")
	return s.toResponse(ctx, category)
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: catégorie", ErrNotFound)
	}
	return s.toResponse(ctx, category)
}

func (s *categoryService) List(ctx context.Context, filter dto.CategoryFilter) (*dto.CategoryListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 15
	}
	categories, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		resp, err := s.toResponse(ctx, &categories[i])
		if err != nil {
			return nil, err
		}
		data[i] = *resp
	}
	return &dto.CategoryListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *categoryService) Update(ctx context.Context, actorID, id uuid.UUID, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: catégorie", ErrNotFound)
	}
	category.Name = req.Name
	category.Description = req.Description
	if err := s.repo.Update(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: une catégorie '%s' existe déjà", ErrConflict, req.Name)
		}
		return nil, err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Catégorie '%s' modifiée", category.Name), model.LevelPrimary, "tags")
	return s.toResponse(ctx, category)
}

// Delete cascades to the category's products, in one transaction. Products
// that appear on sale lines keep their delete-restrict: the cascade is
// refused wholesale rather than silently eating sale history.
func (s *categoryService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: catégorie", ErrNotFound)
	}

	lines, err := s.repo.CountSaleLines(ctx, id)
	if err != nil {
		return err
	}
	if lines > 0 {
		return fmt.Errorf("%w: des produits de cette catégorie figurent sur %d ligne(s) de vente", ErrConflict, lines)
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Catégorie '%s' supprimée", category.Name), model.LevelDanger, "trash")
	return nil
}

func (s *categoryService) ListAll(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListAll(ctx)
}

func (s *categoryService) toResponse(ctx context.Context, c *model.Category) (*dto.CategoryResponse, error) {
	count, err := s.repo.CountProducts(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Description:  c.Description,
		ProductCount: count,
		CreatedAt:    c.CreatedAt.Format("02/01/2006"),
	}, nil
}
