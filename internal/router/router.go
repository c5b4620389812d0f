package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Knight2115/API-StayManager/internal/handler"
)

// Handlers bundles every handler the API exposes so registration takes one
// argument.
type Handlers struct {
	Auth         *handler.AuthHandler
	Hoteles      *handler.HotelHandler
	Habitaciones *handler.HabitacionHandler
	Clientes     *handler.ClienteHandler
	Fechas       *handler.FechaHandler
	Catalogo     *handler.CatalogoHandler
	Empleados    *handler.EmpleadoHandler
	Reservas     *handler.ReservaHandler
}

// Register applies the CORS policy and maps every route of the API. Paths
// keep the Spanish naming of the original frontend contract, at the root
// with no version prefix.
func Register(e *echo.Echo, h Handlers, corsOrigin string) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	e.GET("/healthz", handler.Health)

	e.POST("/login", h.Auth.Login)
	e.POST("/registro", h.Auth.Registro)

	e.GET("/hoteles", h.Hoteles.Listar)
	e.POST("/nuevo-hotel", h.Hoteles.Crear)

	e.GET("/habitaciones/:hotel_id", h.Habitaciones.ListarPorHotel)
	e.POST("/nueva-habitacion", h.Habitaciones.Crear)

	e.GET("/clientes", h.Clientes.Listar)
	e.POST("/nuevo-cliente", h.Clientes.Crear)

	e.GET("/fechas", h.Fechas.Listar)
	e.POST("/nueva-fecha", h.Fechas.Crear)

	e.GET("/canal-reservas", h.Catalogo.ListarCanales)
	e.GET("/pagos", h.Catalogo.ListarPagos)
	e.GET("/tipoHab", h.Catalogo.ListarTiposHab)

	e.GET("/empleados", h.Empleados.Listar)

	e.GET("/reservas", h.Reservas.Listar)
	e.POST("/nueva-reserva", h.Reservas.Crear)
}
