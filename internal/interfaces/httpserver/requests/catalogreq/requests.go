package catalogreq

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// LookupRequest resolves a single model by ID or name fragment.
type LookupRequest struct {
	ModelID string `form:"model_id" binding:"required"`
}

// SearchRequest filters the catalog. All filters are optional.
type SearchRequest struct {
	Query              string   `form:"query"`
	Modality           string   `form:"modality" binding:"omitempty,oneof=all text multimodal image"`
	MinContext         int      `form:"min_context" binding:"omitempty,min=0"`
	MaxPricePerMillion *float64 `form:"max_price_per_million" binding:"omitempty,min=0"`
	FreeOnly           bool     `form:"free_only"`
	Limit              int      `form:"limit" binding:"omitempty,min=1,max=100"`
}

// TopRequest ranks the catalog by one metric.
type TopRequest struct {
	Metric   string `form:"metric" binding:"required,topmetric"`
	Modality string `form:"modality" binding:"omitempty,oneof=all text multimodal"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CompareRequest sets 2-5 models side by side.
type CompareRequest struct {
	ModelIDs []string `json:"model_ids" binding:"required,min=2,max=5,dive,required"`
}

// ReportRequest builds the full report for one model.
type ReportRequest struct {
	ModelID string `form:"model_id" binding:"required"`
}

var topMetrics = map[string]struct{}{
	"cheapest":        {},
	"longest-context": {},
	"newest":          {},
	"free":            {},
}

// RegisterValidations installs the custom binding validators. Must run
// once before the routes are registered.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("topmetric", func(fl validator.FieldLevel) bool {
			_, known := topMetrics[fl.Field().String()]
			return known
		})
	}
}
