package handler

import (
	"context"  // context with cancellation for DB calls
	"net/http" // HTTP status codes
	"strings"  // input trimming
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4"

	"github.com/Knight2115/API-StayManager/internal/config"
	"github.com/Knight2115/API-StayManager/internal/model"
	"github.com/Knight2115/API-StayManager/internal/repository"
	"github.com/Knight2115/API-StayManager/internal/utils"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// CredencialStore is the slice of the credential repository the auth
// handlers need.
type CredencialStore interface {
	GetByUsuario(ctx context.Context, usuario string) (*model.Credencial, error)
	Create(ctx context.Context, c *model.Credencial) error
}

// EmpleadoStore is the slice of the employee repository used by the auth
// and employee handlers.
type EmpleadoStore interface {
	ListAll(ctx context.Context) ([]model.Empleado, error)
	GetByKey(ctx context.Context, key int64) (*model.Empleado, error)
}

// AuthHandler bundles dependencies for the login and registration endpoints.
type AuthHandler struct {
	Cfg          config.Config
	Credenciales CredencialStore
	Empleados    EmpleadoStore
}

func NewAuthHandler(cfg config.Config, c CredencialStore, e EmpleadoStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Credenciales: c, Empleados: e}
}

type loginReq struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contraseña"`
}

type loginResp struct {
	Mensaje string `json:"mensaje"`
	Rol     string `json:"rol"`
	EmpKey  int64  `json:"EmpKey"`
}

// Login verifies a username/password pair against the stored credential.
// No session or token is issued: the response is a single-check gate
// carrying the role and the owning employee key.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "cuerpo inválido"})
	}
	req.Usuario = strings.TrimSpace(req.Usuario)
	if req.Usuario == "" || req.Contrasena == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "usuario y contraseña requeridos"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cred, err := h.Credenciales.GetByUsuario(ctx, req.Usuario)
	if err != nil {
		if err == repository.ErrCredencialNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Usuario no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	if !utils.VerifyPassword(cred.PasswordHash, req.Contrasena) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Contraseña incorrecta"})
	}
	if !cred.Estado {
		return c.JSON(http.StatusForbidden, echo.Map{"detail": "Usuario inactivo"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Mensaje: "Inicio de sesión exitoso",
		Rol:     cred.Rol,
		EmpKey:  cred.EmpKey,
	})
}

type registroReq struct {
	EmpKey     int64  `json:"EmpKey"`
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contraseña"`
}

// Registro creates a credential for an existing employee. The password is
// stored only as a bcrypt hash; Rol and Estado take their column defaults.
func (h *AuthHandler) Registro(c echo.Context) error {
	var req registroReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "cuerpo inválido"})
	}
	req.Usuario = strings.TrimSpace(req.Usuario)
	if req.EmpKey == 0 || req.Usuario == "" || req.Contrasena == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "EmpKey, usuario y contraseña requeridos"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Empleados.GetByKey(ctx, req.EmpKey); err != nil {
		if err == repository.ErrEmpleadoNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Empleado no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}

	hash, err := utils.HashPassword(req.Contrasena, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	cred := model.Credencial{EmpKey: req.EmpKey, Usuario: req.Usuario, PasswordHash: hash}
	if err := h.Credenciales.Create(ctx, &cred); err != nil {
		if err == repository.ErrUsuarioExists {
			return c.JSON(http.StatusConflict, echo.Map{"detail": "Ya existe un usuario con ese nombre"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	return c.JSON(http.StatusCreated, toCredencialOut(cred))
}
