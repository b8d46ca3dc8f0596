package catalogroute

import (
	"net/http"

	"github.com/gin-gonic/gin"
	decimal "github.com/shopspring/decimal"

	"modelscout/catalog-api/internal/domain/billing"
	"modelscout/catalog-api/internal/domain/catalog"
	"modelscout/catalog-api/internal/interfaces/httpserver/handlers/cataloghandler"
	"modelscout/catalog-api/internal/interfaces/httpserver/middlewares"
	"modelscout/catalog-api/internal/interfaces/httpserver/requests/catalogreq"
	"modelscout/catalog-api/internal/interfaces/httpserver/responses"
	"modelscout/catalog-api/internal/utils/platformerrors"
)

type CatalogRoute struct {
	catalogHandler *cataloghandler.CatalogHandler
	ledger         *billing.Ledger
}

func NewCatalogRoute(catalogHandler *cataloghandler.CatalogHandler, ledger *billing.Ledger) *CatalogRoute {
	return &CatalogRoute{
		catalogHandler: catalogHandler,
		ledger:         ledger,
	}
}

func (route *CatalogRoute) RegisterRouter(router *gin.RouterGroup) {
	catalogRoute := router.Group("catalog")
	catalogRoute.GET("/overview", middlewares.Charge(route.ledger, billing.OpOverview), route.GetOverview)
	catalogRoute.GET("/lookup", middlewares.Charge(route.ledger, billing.OpLookup), route.GetLookup)
	catalogRoute.GET("/search", middlewares.Charge(route.ledger, billing.OpSearch), route.GetSearch)
	catalogRoute.GET("/top", middlewares.Charge(route.ledger, billing.OpTop), route.GetTop)
	catalogRoute.POST("/compare", middlewares.Charge(route.ledger, billing.OpCompare), route.PostCompare)
	catalogRoute.GET("/report", middlewares.Charge(route.ledger, billing.OpReport), route.GetReport)
}

// GetOverview
// @Summary Catalog overview
// @Description Aggregates the full catalog: model counts, providers, modalities, pricing split.
// @Tags Catalog API
// @Produce json
// @Success 200 {object} catalog.OverviewResult "Catalog aggregates"
// @Failure 502 {object} responses.ErrorResponse "Upstream catalog unavailable"
// @Router /v1/catalog/overview [get]
func (route *CatalogRoute) GetOverview(reqCtx *gin.Context) {
	result, err := route.catalogHandler.Overview(reqCtx.Request.Context())
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to build catalog overview")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// GetLookup
// @Summary Look up one model
// @Description Resolves a model by exact ID, then by ID/name fragment. A miss is a normal found:false result.
// @Tags Catalog API
// @Produce json
// @Param model_id query string true "Model ID or name fragment"
// @Success 200 {object} catalog.LookupResult "Lookup result"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 502 {object} responses.ErrorResponse "Upstream catalog unavailable"
// @Router /v1/catalog/lookup [get]
func (route *CatalogRoute) GetLookup(reqCtx *gin.Context) {
	var req catalogreq.LookupRequest
	if err := reqCtx.ShouldBindQuery(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "model_id is required", "e5d1c7aa-0df2-49d4-a1bb-b6a1f52c8f0e")
		return
	}

	result, err := route.catalogHandler.Lookup(reqCtx.Request.Context(), req.ModelID)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to look up model")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// GetSearch
// @Summary Search the catalog
// @Description Filters models by text, modality bucket, context floor, price ceiling and free-only, ranked by context length.
// @Tags Catalog API
// @Produce json
// @Param query query string false "Substring matched against id, name and description"
// @Param modality query string false "Modality bucket" Enums(all, text, multimodal, image)
// @Param min_context query int false "Minimum context length in tokens"
// @Param max_price_per_million query number false "Maximum derived price in USD per million tokens"
// @Param free_only query bool false "Only models with derived price 0"
// @Param limit query int false "Result cap, default 20"
// @Success 200 {object} catalog.SearchResult "Search results"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 502 {object} responses.ErrorResponse "Upstream catalog unavailable"
// @Router /v1/catalog/search [get]
func (route *CatalogRoute) GetSearch(reqCtx *gin.Context) {
	var req catalogreq.SearchRequest
	if err := reqCtx.ShouldBindQuery(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid search parameters", "8f0b7c1d-3a44-4a8e-b7c9-52f1e5a3d7b2")
		return
	}

	params := catalog.SearchParams{
		Query:      req.Query,
		Modality:   catalog.ModalityBucket(req.Modality),
		MinContext: req.MinContext,
		FreeOnly:   req.FreeOnly,
		Limit:      req.Limit,
	}
	if req.MaxPricePerMillion != nil {
		maxPrice := decimal.NewFromFloat(*req.MaxPricePerMillion)
		params.MaxPricePerMillion = &maxPrice
	}

	result, err := route.catalogHandler.Search(reqCtx.Request.Context(), params)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to search catalog")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// GetTop
// @Summary Rank models
// @Description Ranks models by one metric: cheapest, longest-context, newest or free.
// @Tags Catalog API
// @Produce json
// @Param metric query string true "Ranking metric" Enums(cheapest, longest-context, newest, free)
// @Param modality query string false "Modality bucket" Enums(all, text, multimodal)
// @Param limit query int false "Result cap, default 10"
// @Success 200 {object} catalog.TopResult "Ranked models"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 502 {object} responses.ErrorResponse "Upstream catalog unavailable"
// @Router /v1/catalog/top [get]
func (route *CatalogRoute) GetTop(reqCtx *gin.Context) {
	var req catalogreq.TopRequest
	if err := reqCtx.ShouldBindQuery(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "metric must be one of cheapest, longest-context, newest, free", "2b9e4f6d-7c13-4f2e-9a55-d8e0c1b3a4f5")
		return
	}

	result, err := route.catalogHandler.Top(reqCtx.Request.Context(), catalog.TopParams{
		Metric:   catalog.TopMetric(req.Metric),
		Modality: catalog.ModalityBucket(req.Modality),
		Limit:    req.Limit,
	})
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to rank models")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// PostCompare
// @Summary Compare models
// @Description Sets 2-5 models side by side and reduces the found set to its cheapest and longest-context entries.
// @Tags Catalog API
// @Accept json
// @Produce json
// @Param request body catalogreq.CompareRequest true "Model IDs to compare"
// @Success 200 {object} catalog.CompareResult "Comparison"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 502 {object} responses.ErrorResponse "Upstream catalog unavailable"
// @Router /v1/catalog/compare [post]
func (route *CatalogRoute) PostCompare(reqCtx *gin.Context) {
	var req catalogreq.CompareRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "model_ids must hold 2 to 5 entries", "c4a2e8f1-6b0d-4e7a-8c3f-9d5b2a1e0f47")
		return
	}

	result, err := route.catalogHandler.Compare(reqCtx.Request.Context(), req.ModelIDs)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to compare models")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// GetReport
// @Summary Model report
// @Description Full report for one model: pricing analysis, cost estimate and closest-priced alternatives.
// @Tags Catalog API
// @Produce json
// @Param model_id query string true "Model ID or name fragment"
// @Success 200 {object} catalog.ReportResult "Model report"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 502 {object} responses.ErrorResponse "Upstream catalog unavailable"
// @Router /v1/catalog/report [get]
func (route *CatalogRoute) GetReport(reqCtx *gin.Context) {
	var req catalogreq.ReportRequest
	if err := reqCtx.ShouldBindQuery(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "model_id is required", "f7d3b9a5-1e2c-4d68-a0b4-c6e8f1a2d3b4")
		return
	}

	result, err := route.catalogHandler.Report(reqCtx.Request.Context(), req.ModelID)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to build model report")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}
