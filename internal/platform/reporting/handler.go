package reporting

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/hms/hms/internal/platform/validate"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard/", h.Dashboard)
	g.GET("/reports/admissions/", h.Admissions)
	g.GET("/reports/admissions/export/", h.ExportAdmissions)
	g.GET("/reports/revenue/", h.Revenue)
	g.GET("/reports/revenue/export/", h.ExportRevenue)
	g.GET("/reports/attendance/", h.Attendance)
	g.GET("/reports/attendance/export/", h.ExportAttendance)
}

func respondError(c echo.Context, err error) error {
	if verrs, ok := validate.AsErrors(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": verrs})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func queryRange(c echo.Context) (DateRange, error) {
	return ParseRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
}

func sendWorkbook(c echo.Context, f *excelize.File, name string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK, XLSXContentType, buf.Bytes())
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Admissions(c echo.Context) error {
	rng, err := queryRange(c)
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.Admissions(c.Request().Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *Handler) ExportAdmissions(c echo.Context) error {
	rng, err := queryRange(c)
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.Admissions(c.Request().Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	f, err := AdmissionsWorkbook(rep)
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, f, "admissions-report.xlsx")
}

func (h *Handler) Revenue(c echo.Context) error {
	rng, err := queryRange(c)
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.Revenue(c.Request().Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *Handler) ExportRevenue(c echo.Context) error {
	rng, err := queryRange(c)
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.Revenue(c.Request().Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	f, err := RevenueWorkbook(rep)
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, f, "revenue-report.xlsx")
}

func (h *Handler) Attendance(c echo.Context) error {
	rng, err := queryRange(c)
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.Attendance(c.Request().Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *Handler) ExportAttendance(c echo.Context) error {
	rng, err := queryRange(c)
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.Attendance(c.Request().Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	f, err := AttendanceWorkbook(rep)
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, f, "attendance-report.xlsx")
}
