package service

import (
	"context"
	"fmt"
	"io"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
)

// ImageStore persists uploaded product images under the media root and maps
// stored paths back to public URLs. Uploads are accepted as-is: no format or
// size restriction.
type ImageStore interface {
	Save(filename string, r io.Reader) (string, error)
	URL(path string) string
}

type ProductService interface {
	Create(ctx context.Context, actorID uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	ListCaisse(ctx context.Context, filter dto.CaisseFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	AttachImage(ctx context.Context, actorID, id uuid.UUID, filename string, r io.Reader) (*dto.ProductResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	ListAll(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	images       ImageStore
	activity     ActivityRecorder
}

func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	images ImageStore,
	activity ActivityRecorder,
) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, images: images, activity: activity}
}

func (s *productService) Create(ctx context.Context, actorID uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: catégorie", ErrNotFound)
	}
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("%w: catégorie", ErrNotFound)
	}

	status := req.Status
	if status == "" {
		status = model.ProductActive
	}
	product := &model.Product{
		Name:          req.Name,
		CategoryID:    categoryID,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
		Status:        status,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actorID, fmt.Sprintf("Produit '%s' créé", product.Name), model.LevelSuccess, "box")
	return s.reload(ctx, product.ID)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: produit", ErrNotFound)
	}
	resp := s.toResponse(product)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 15
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, len(products))
	for i := range products {
		data[i] = s.toResponse(&products[i])
	}
	return &dto.ProductListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productService) ListCaisse(ctx context.Context, filter dto.CaisseFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	products, total, err := s.repo.ListCaisse(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, len(products))
	for i := range products {
		data[i] = s.toResponse(&products[i])
	}
	return &dto.ProductListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: repository.CaissePageSize,
	}, nil
}

func (s *productService) Update(ctx context.Context, actorID, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: produit", ErrNotFound)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: catégorie", ErrNotFound)
	}
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("%w: catégorie", ErrNotFound)
	}

	product.Name = req.Name
	product.CategoryID = categoryID
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	product.Description = req.Description
	if req.Status != "" {
		product.Status = req.Status
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actorID, fmt.Sprintf("Produit '%s' modifié", product.Name), model.LevelPrimary, "box")
	return s.reload(ctx, id)
}

func (s *productService) AttachImage(ctx context.Context, actorID, id uuid.UUID, filename string, r io.Reader) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: produit", ErrNotFound)
	}
	path, err := s.images.Save(filename, r)
	if err != nil {
		return nil, fmt.Errorf("enregistrement de l'image: %w", err)
	}
	if err := s.repo.SetImagePath(ctx, id, path); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Image du produit '%s' mise à jour", product.Name), model.LevelInfo, "image")
	return s.reload(ctx, id)
}

// Delete removes the product together with its historical sale lines. Stored
// sale totals are left as recorded.
func (s *productService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: produit", ErrNotFound)
	}
	if err := s.repo.DeleteWithSaleLines(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Produit '%s' supprimé", product.Name), model.LevelDanger, "trash")
	return nil
}

func (s *productService) ListAll(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	return s.repo.ListAll(ctx, filter)
}

func (s *productService) reload(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(product)
	return &resp, nil
}

func (s *productService) toResponse(p *model.Product) dto.ProductResponse {
	categoryName := ""
	if p.Category != nil {
		categoryName = p.Category.Name
	}
	var imageURL *string
	if p.ImagePath != nil {
		u := s.images.URL(*p.ImagePath)
		imageURL = &u
	}
	return dto.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		CategoryID:    p.CategoryID.String(),
		CategoryName:  categoryName,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Description:   p.Description,
		Status:        p.Status,
		InStock:       p.InStock(),
		ImageURL:      imageURL,
		CreatedAt:     p.CreatedAt.Format("02/01/2006 15:04"),
		UpdatedAt:     p.UpdatedAt.Format("02/01/2006 15:04"),
	}
}
