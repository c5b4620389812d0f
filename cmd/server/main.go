package main // Entry point package

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Knight2115/API-StayManager/internal/config"
	"github.com/Knight2115/API-StayManager/internal/database"
	"github.com/Knight2115/API-StayManager/internal/handler"
	"github.com/Knight2115/API-StayManager/internal/middleware"
	"github.com/Knight2115/API-StayManager/internal/repository"
	"github.com/Knight2115/API-StayManager/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environment takes precedence

	cfg := config.Load()
	logger := middleware.NewLogger(cfg.Env)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("mysql connect failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn().Msg("redis unavailable, rate limiting disabled")
	}

	hoteles := repository.NewHotelRepo(db)
	empleados := repository.NewEmpleadoRepo(db)
	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, repository.NewCredencialRepo(db), empleados),
		Hoteles:      handler.NewHotelHandler(hoteles),
		Habitaciones: handler.NewHabitacionHandler(repository.NewHabitacionRepo(db), hoteles),
		Clientes:     handler.NewClienteHandler(repository.NewClienteRepo(db)),
		Fechas:       handler.NewFechaHandler(repository.NewFechaRepo(db)),
		Catalogo: handler.NewCatalogoHandler(
			repository.NewCanalReservaRepo(db),
			repository.NewPagoRepo(db),
			repository.NewTipoHabRepo(db),
		),
		Empleados: handler.NewEmpleadoHandler(empleados),
		Reservas:  handler.NewReservaHandler(repository.NewReservaRepo(db)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	router.Register(e, h, cfg.CORSOrigin)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
