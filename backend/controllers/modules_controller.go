package controllers

import (
	"pandas-platform/backend/services"
	"pandas-platform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ModulesController struct {
	Catalog *services.CatalogService
}

func NewModulesController(catalog *services.CatalogService) *ModulesController {
	return &ModulesController{Catalog: catalog}
}

// ListModules godoc
// @Summary List learning modules
// @Tags modules
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/modules [get]
func (mc *ModulesController) ListModules(c *fiber.Ctx) error {
	modules, err := mc.Catalog.ListModules(c.UserContext())
	if err != nil {
		return err
	}
	return utils.OK(c, fiber.Map{"modules": modules})
}

// GetModule godoc
// @Summary Get one module
// @Tags modules
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/modules/{moduleId} [get]
func (mc *ModulesController) GetModule(c *fiber.Ctx) error {
	module, err := mc.Catalog.GetModule(c.UserContext(), c.Params("moduleId"))
	if err != nil {
		return err
	}
	return utils.OK(c, fiber.Map{"module": module})
}
