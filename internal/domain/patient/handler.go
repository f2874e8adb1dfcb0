package patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

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
	g.GET("/patients/", h.List)
	g.GET("/patients/add/", h.AddForm)
	g.POST("/patients/add/", h.Create)
	g.GET("/patients/search/", h.Search)
	g.GET("/patients/:id/", h.Get)
	g.GET("/patients/:id/edit/", h.EditForm)
	g.POST("/patients/:id/edit/", h.Update)
	g.POST("/patients/:id/discharge/", h.Discharge)
	g.POST("/patients/:id/delete/", h.Delete)
}

func respondError(c echo.Context, err error) error {
	if verrs, ok := validate.AsErrors(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": verrs})
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) AddForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"genders": validGenders,
	})
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Create(c.Request().Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/patients/")
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	admittedOnly := c.QueryParam("admitted") == "true"
	items, total, err := h.svc.List(c.Request().Context(), admittedOnly, pg.Limit, pg.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	bills, err := h.svc.Bills(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"patient": p,
		"bills":   bills,
	})
}

func (h *Handler) EditForm(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Update(c.Request().Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/patients/")
}

func (h *Handler) Discharge(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if _, err := h.svc.Discharge(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/patients/")
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/patients/")
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
