package services

import (
	"context"
	"errors"

	"pandas-platform/backend/models"
	"pandas-platform/backend/store"
	"pandas-platform/backend/utils"
)

type CatalogService struct {
	modules store.ModuleStore
}

func NewCatalogService(modules store.ModuleStore) *CatalogService {
	return &CatalogService{modules: modules}
}

func (s *CatalogService) ListModules(ctx context.Context) ([]models.Module, error) {
	modules, err := s.modules.ListModules(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Error fetching modules", err)
	}
	return modules, nil
}

func (s *CatalogService) GetModule(ctx context.Context, id string) (*models.Module, error) {
	module, err := s.modules.FindModule(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NewNotFoundError("Module not found")
		}
		return nil, utils.NewInternalError("Error fetching module", err)
	}
	return module, nil
}
