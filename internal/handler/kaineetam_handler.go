package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"kaineetam/internal/errors"
	"kaineetam/internal/model"
	"kaineetam/internal/service"
)

// KaineetamHandler handles payment confirmation and dashboard endpoints.
type KaineetamHandler struct {
	kaineetamService service.KaineetamService
}

// NewKaineetamHandler creates a new kaineetam handler.
func NewKaineetamHandler(kaineetamService service.KaineetamService) *KaineetamHandler {
	return &KaineetamHandler{kaineetamService: kaineetamService}
}

// ConfirmRequest represents a self-reported payment confirmation.
type ConfirmRequest struct {
	GiverName string `json:"giver_name"`
	Amount    string `json:"amount"`
	Note      string `json:"note" validate:"omitempty,max=150"`
}

// ConfirmResponse acknowledges a recorded confirmation.
type ConfirmResponse struct {
	Message string              `json:"message"`
	Entry   *model.KaineetamLog `json:"entry"`
}

// DashboardEntryResponse is one row of the dashboard detail view.
type DashboardEntryResponse struct {
	GiverName  string    `json:"giver_name"`
	Amount     string    `json:"amount"`
	Note       string    `json:"note,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// DashboardResponse represents the aggregated dashboard for a blessing.
type DashboardResponse struct {
	Blessing *model.Blessing          `json:"blessing"`
	Total    string                   `json:"total"`
	Count    int                      `json:"count"`
	Average  string                   `json:"average"`
	TopGiver *DashboardEntryResponse  `json:"top_giver,omitempty"`
	Entries  []DashboardEntryResponse `json:"entries"`
}

// Confirm godoc
// @Summary Record a self-reported kaineetam payment
// @Tags kaineetam
// @Accept json
// @Produce json
// @Param code path string true "Blessing code"
// @Param request body ConfirmRequest true "Confirmation data"
// @Success 201 {object} ConfirmResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blessings/{code}/kaineetam [post]
func (h *KaineetamHandler) Confirm(c echo.Context) error {
	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	entry, err := h.kaineetamService.Confirm(c.Request().Context(), c.Param("code"), req.GiverName, amount, req.Note)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ConfirmResponse{
		Message: "kaineetam recorded, thank you",
		Entry:   entry,
	})
}

// Dashboard godoc
// @Summary Kaineetam dashboard for a blessing
// @Tags kaineetam
// @Produce json
// @Param code path string true "Blessing code"
// @Success 200 {object} DashboardResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blessings/{code}/dashboard [get]
func (h *KaineetamHandler) Dashboard(c echo.Context) error {
	summary, err := h.kaineetamService.Dashboard(c.Request().Context(), c.Param("code"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := DashboardResponse{
		Blessing: summary.Blessing,
		Total:    summary.Total.StringFixed(2),
		Count:    summary.Count,
		Average:  summary.Average.StringFixed(2),
		Entries:  make([]DashboardEntryResponse, 0, len(summary.Entries)),
	}
	if summary.TopGiver != nil {
		resp.TopGiver = &DashboardEntryResponse{
			GiverName:  summary.TopGiver.GiverName,
			Amount:     summary.TopGiver.Amount.StringFixed(2),
			Note:       summary.TopGiver.Note,
			ReceivedAt: summary.TopGiver.ReceivedAt,
		}
	}
	for _, entry := range summary.Entries {
		resp.Entries = append(resp.Entries, DashboardEntryResponse{
			GiverName:  entry.GiverName,
			Amount:     entry.Amount.StringFixed(2),
			Note:       entry.Note,
			ReceivedAt: entry.ReceivedAt,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// Export godoc
// @Summary Download the kaineetam log as CSV
// @Tags kaineetam
// @Produce text/csv
// @Param code path string true "Blessing code"
// @Success 200 {file} file
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blessings/{code}/dashboard/export [get]
func (h *KaineetamHandler) Export(c echo.Context) error {
	code := c.Param("code")

	data, err := h.kaineetamService.ExportCSV(c.Request().Context(), code)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="kaineetam_log_%s.csv"`, code))
	return c.Blob(http.StatusOK, "text/csv", data)
}
