package products

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/drivecans/storefront-backend/pkg/db/models"
	pkgerrors "github.com/drivecans/storefront-backend/pkg/errors"
)

// Service exposes the read-only catalog surface.
type Service interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, idOrSlug string) (*models.Product, error)
}

type repository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
}

type service struct {
	repo repository
}

// NewService builds a catalog service over the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	summaries := make([]Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, summaryFromModel(row))
	}
	return summaries, nil
}

// Get resolves numeric-looking identifiers by id and anything else by slug.
func (s *service) Get(ctx context.Context, idOrSlug string) (*models.Product, error) {
	key := strings.TrimSpace(idOrSlug)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product identifier required")
	}

	var (
		row *models.Product
		err error
	)
	if id, parseErr := strconv.ParseUint(key, 10, 64); parseErr == nil {
		row, err = s.repo.FindByID(ctx, uint(id))
	} else {
		row, err = s.repo.FindBySlug(ctx, key)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return row, nil
}
