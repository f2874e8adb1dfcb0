package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/validate"
)

type Handler struct {
	svc        *Service
	secret     []byte
	sessionTTL time.Duration
}

func NewHandler(svc *Service, secret []byte, sessionTTL time.Duration) *Handler {
	return &Handler{svc: svc, secret: secret, sessionTTL: sessionTTL}
}

// RegisterRoutes wires registration and login onto the public surface and the
// session-bound operations onto the authenticated one.
func (h *Handler) RegisterRoutes(public, private *echo.Group) {
	public.GET("/register/", h.RegisterForm)
	public.POST("/register/", h.Register)
	public.GET("/login/", h.LoginForm)
	public.POST("/login/", h.Login)
	private.POST("/logout/", h.Logout)
	private.POST("/change-password/", h.ChangePassword)
	private.GET("/profile/", h.Profile)
}

func respondError(c echo.Context, err error) error {
	if verrs, ok := validate.AsErrors(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": verrs})
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return echo.NewHTTPError(http.StatusNotFound, "account not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) RegisterForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"roles":   validRoles,
		"genders": validGenders,
	})
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Register(c.Request().Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/login/")
}

func (h *Handler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "submit username and password"})
}

func (h *Handler) Login(c echo.Context) error {
	var in LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, p, err := h.svc.Login(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
		}
		return respondError(c, err)
	}

	token, err := auth.NewSessionToken(h.secret, a.ID.String(), a.Username, p.Role, h.sessionTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	auth.SetSessionCookie(c, token, h.sessionTTL)
	return c.Redirect(http.StatusSeeOther, "/dashboard/")
}

func (h *Handler) Logout(c echo.Context) error {
	auth.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ChangePassword(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}
	var in ChangePasswordInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.ChangePassword(c.Request().Context(), accountID, in); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard/")
}

func (h *Handler) Profile(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}
	a, p, err := h.svc.Get(c.Request().Context(), accountID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"account": a,
		"profile": p,
	})
}

func sessionAccountID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(auth.UserIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return id, nil
}
