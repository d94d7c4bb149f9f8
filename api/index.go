package api

import (
	"net/http"
	"sync"

	"lafamilia/config"
	"lafamilia/logger"
	"lafamilia/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	router  http.Handler
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.LoadConfig()
		if err != nil {
			initErr = err
			return
		}
		log := logger.New(logger.FromSettings("production", cfg.LogLevel, "json"))

		app, err := routes.NewApp(cfg, log)
		if err != nil {
			log.Error("failed to start", zap.Error(err))
			initErr = err
			return
		}
		router = app.Router
	})
}

// Handler is the serverless entry point. The app is built on the first
// request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"success":false,"message":"Service unavailable"}`))
		return
	}
	router.ServeHTTP(w, r)
}
