package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"kaineetam/internal/errors"
	"kaineetam/internal/model"
	"kaineetam/internal/service"
)

// BlessingHandler handles blessing endpoints.
type BlessingHandler struct {
	blessingService service.BlessingService
}

// NewBlessingHandler creates a new blessing handler.
func NewBlessingHandler(blessingService service.BlessingService) *BlessingHandler {
	return &BlessingHandler{blessingService: blessingService}
}

// CreateBlessingRequest represents a blessing creation request. Required
// fields are validated by the service so missing ones can be reported
// together, the way the create form expects.
type CreateBlessingRequest struct {
	RecipientName string `json:"recipient_name"`
	SenderName    string `json:"sender_name"`
	UPIID         string `json:"upi_id"`
	Tone          string `json:"tone"`
	CustomMessage string `json:"custom_message" validate:"omitempty,max=200"`
}

// CreateBlessingResponse represents a created blessing with its share links.
type CreateBlessingResponse struct {
	Code          string `json:"code"`
	ViewLink      string `json:"view_link"`
	DashboardLink string `json:"dashboard_link"`
}

// BlessingView is the display form of a blessing, with an optional freshly
// built payment link when an amount was supplied.
type BlessingView struct {
	*model.Blessing
	UPILink string `json:"upi_link,omitempty"`
}

// Create godoc
// @Summary Create a blessing
// @Tags blessings
// @Accept json
// @Produce json
// @Param request body CreateBlessingRequest true "Blessing data"
// @Success 201 {object} CreateBlessingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blessings [post]
func (h *BlessingHandler) Create(c echo.Context) error {
	var req CreateBlessingRequest
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

	blessing, links, err := h.blessingService.Create(c.Request().Context(), service.CreateBlessingInput{
		RecipientName: req.RecipientName,
		SenderName:    req.SenderName,
		UPIID:         req.UPIID,
		Tone:          model.Tone(req.Tone),
		CustomMessage: req.CustomMessage,
		SenderID:      senderIDFromContext(c),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreateBlessingResponse{
		Code:          blessing.Code,
		ViewLink:      links.View,
		DashboardLink: links.Dashboard,
	})
}

// Get godoc
// @Summary View a blessing
// @Tags blessings
// @Produce json
// @Param code path string true "Blessing code"
// @Param amount query string false "Kaineetam amount; when present the response includes a UPI payment link"
// @Success 200 {object} BlessingView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blessings/{code} [get]
func (h *BlessingHandler) Get(c echo.Context) error {
	code := c.Param("code")

	blessing, err := h.blessingService.Get(c.Request().Context(), code)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	view := BlessingView{Blessing: blessing}

	if raw := c.QueryParam("amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid amount",
				Code:  "INVALID_AMOUNT",
			})
		}
		pr, err := h.blessingService.BuildPaymentRequest(c.Request().Context(), code, amount)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		view.UPILink = pr.Link
	}

	return c.JSON(http.StatusOK, view)
}

// QR godoc
// @Summary QR code for paying a blessing's sender
// @Tags blessings
// @Produce png
// @Param code path string true "Blessing code"
// @Param amount query string true "Kaineetam amount"
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blessings/{code}/qr [get]
func (h *BlessingHandler) QR(c echo.Context) error {
	code := c.Param("code")

	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	pr, err := h.blessingService.BuildPaymentRequest(c.Request().Context(), code, amount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.Blob(http.StatusOK, "image/png", pr.QRPNG)
}

// MyBlessings godoc
// @Summary List blessings created by the authenticated sender
// @Tags blessings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Blessing
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/blessings [get]
func (h *BlessingHandler) MyBlessings(c echo.Context) error {
	senderID := senderIDFromContext(c)
	if senderID == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "UNAUTHORIZED",
		})
	}

	blessings, err := h.blessingService.ListBySender(c.Request().Context(), *senderID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, blessings)
}

// senderIDFromContext reads the authenticated sender's id from the JWT, if
// the request carried one. Creation is open to anonymous callers, so absence
// is not an error.
func senderIDFromContext(c echo.Context) *uuid.UUID {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	raw, ok := claims["sender_id"].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
