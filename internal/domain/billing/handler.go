package billing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/validate"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/bills/", h.List)
	g.GET("/bills/search/", h.Search)
	g.GET("/bills/generate/:patient_id/", h.PrefillForm)
	g.POST("/bills/generate/:patient_id/", h.Generate)
	g.GET("/bills/:id/", h.Get)
	g.POST("/bills/:id/update-payment/", h.UpdatePayment)
}

func respondError(c echo.Context, err error) error {
	if verrs, ok := validate.AsErrors(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": verrs})
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func paramInt64(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func (h *Handler) PrefillForm(c echo.Context) error {
	patientID, err := paramInt64(c, "patient_id")
	if err != nil {
		return err
	}
	pf, err := h.svc.Prefill(c.Request().Context(), patientID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"prefill":          pf,
		"payment_statuses": validPaymentStatuses,
		"payment_methods":  validPaymentMethods,
	})
}

func (h *Handler) Generate(c echo.Context) error {
	patientID, err := paramInt64(c, "patient_id")
	if err != nil {
		return err
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	createdBy := auth.UserIDFromContext(c.Request().Context())
	if _, err := h.svc.Generate(c.Request().Context(), patientID, in, createdBy); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/bills/")
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	status := c.QueryParam("status")
	items, total, err := h.svc.List(c.Request().Context(), status, pg.Limit, pg.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	b, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"bill":  b,
		"tax":   b.Tax(),
		"total": b.Total(),
	})
}

func (h *Handler) UpdatePayment(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	var in PaymentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.UpdatePayment(c.Request().Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/bills/")
}

func (h *Handler) Search(c echo.Context) error {
	pg := pagination.FromContext(c)
	query := c.QueryParam("query")
	items, total, err := h.svc.Search(c.Request().Context(), query, pg.Limit, pg.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": pagination.NewResponse(items, total, pg.Limit, pg.Offset),
	})
}
