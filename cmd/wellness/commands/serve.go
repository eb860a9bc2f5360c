package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dhanbad/wellness-admin/internal/api"
	"dhanbad/wellness-admin/internal/config"
	"dhanbad/wellness-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP admin API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, st, log, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if !cfg.Log.Development {
			gin.SetMode(gin.ReleaseMode)
		}

		router := gin.New()
		router.Use(gin.Recovery())
		api.SetupRoutes(router, log, api.Services{
			Directory:  service.NewDirectoryService(s),
			Clients:    service.NewClientService(s),
			Scheduling: service.NewSchedulingService(s),
			Plans:      service.NewPlanService(s),
			Billing:    service.NewBillingService(s),
			Reports:    service.NewReportService(s),
			Resetter:   s,
		})

		server := &http.Server{
			Addr:         cfg.Server.Address,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		log.Info("server starting", zap.String("address", cfg.Server.Address))
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("listen failed", zap.Error(err))
			}
		}()

		// Wait for interrupt, then give in-flight requests time to finish.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info("server exiting")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
