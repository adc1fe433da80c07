package service

import (
	"context"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/db"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (*model.Category, error)
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint) error
}

type CategoryService struct {
	categoryRepo db.ICategoryRepository
}

func NewCategoryService(categoryRepo db.ICategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	existing, err := s.categoryRepo.GetCategoryByName(ctx, category.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryNameUsed
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, categoryID uint) (*model.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.GetAllCategories(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	current, err := s.categoryRepo.GetCategoryByID(ctx, category.CategoryID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrCategoryNotFound
	}

	sameName, err := s.categoryRepo.GetCategoryByName(ctx, category.Name)
	if err != nil {
		return nil, err
	}
	if sameName != nil && sameName.CategoryID != category.CategoryID {
		return nil, ErrCategoryNameUsed
	}

	category.BaseModel = current.BaseModel
	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return s.GetCategory(ctx, category.CategoryID)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID uint) error {
	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}

var _ ICategoryService = (*CategoryService)(nil)
