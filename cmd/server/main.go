package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/netrok/rh-api/config"
	"github.com/netrok/rh-api/internal/api/handler"
	"github.com/netrok/rh-api/internal/api/router"
	"github.com/netrok/rh-api/internal/repository"
	"github.com/netrok/rh-api/internal/service"
	"github.com/netrok/rh-api/pkg/database"
	"github.com/netrok/rh-api/pkg/jwt"
	applogger "github.com/netrok/rh-api/pkg/logger"
	"github.com/netrok/rh-api/pkg/redis"
)

func main() {
	// 1. Cargar configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración falló: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializar logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inicializar logging falló: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando aplicación...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Conectar a la base de datos
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("conexión a la base de datos falló", zap.Error(err))
	}
	logger.Info("conexión a la base de datos establecida")

	// 3.1 Ejecutar migraciones
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("obtener sql.DB subyacente falló", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migraciones fallaron", zap.Error(err))
	}

	// 4. Conectar a Redis (opcional: sin Redis se degrada, la lista
	// negra de tokens y el límite de intentos de login quedan inactivos)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("conexión a Redis falló, revocación de tokens inactiva", zap.Error(err))
		rdb = nil
	}

	// 5. Gestor de JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Inyección de dependencias: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Router
	engine, err := router.Setup(cfg, h, jwtMgr, repo, rdb, logger)
	if err != nil {
		logger.Fatal("inicializar router falló", zap.Error(err))
	}

	// 8. Servidor HTTP con apagado ordenado
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("servidor HTTP falló", zap.Error(err))
		}
	}()

	// 9. Esperar señal del sistema
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de apagado recibida, cerrando...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("apagado del servidor falló", zap.Error(err))
	}

	if sqlDB != nil {
		sqlDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor detenido")
}
