package handlers

import (
	"kobis-search/internal/services"
	"kobis-search/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SearchHandler struct {
	search  services.SearchService
	catalog services.CatalogService
	logger  *logrus.Logger
}

func NewSearchHandler(search services.SearchService, catalog services.CatalogService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		search:  search,
		catalog: catalog,
		logger:  logger,
	}
}

// Search godoc
// @Summary Search movies
// @Description Filter, sort and paginate the catalog. Genres and countries match any selected value; different filters are combined with AND. Pages hold 20 movies.
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest false "Search filters"
// @Success 200 {object} utils.StandardResponse{data=models.ResultPage,meta=utils.PaginationMeta} "One page of movies"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse{data=models.ResultPage} "Store failure; data holds the empty page"
// @Router /search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req SearchRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			h.logger.WithError(err).Debug("Rejected search body")
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	ctx := services.WithRequestID(c.UserContext(), requestID(c))

	page, err := h.search.SearchMovies(ctx, req.ToModel())
	if err != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusInternalServerError, "Failed to search movies", page)
	}

	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", page, utils.NewPaginationMeta(page))
}

// FilterOptions godoc
// @Summary Get filter options
// @Description Genres, countries grouped by continent, production statuses and movie types present in the catalog
// @Tags search
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.FilterOptions} "Filter options"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /filter-options [get]
func (h *SearchHandler) FilterOptions(c *fiber.Ctx) error {
	options, err := h.catalog.GetFilterOptions(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve filter options")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Filter options retrieved successfully", options)
}

// Stats godoc
// @Summary Get catalog statistics
// @Description Total number of movies regardless of filters
// @Tags search
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.CatalogStats} "Catalog statistics"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /stats [get]
func (h *SearchHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.catalog.GetStats(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve statistics")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Statistics retrieved successfully", stats)
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
