package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/api"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/calculation"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/store/sqlite"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/taxdata"
)

func newServeCommand() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address == "" {
				address = cfg.Server.Address
			}

			tables, err := taxdata.Load()
			if err != nil {
				return err
			}

			st, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			engine := calculation.NewEngine(tables, calculation.NewZapLogger(logger))
			handler := api.NewHandler(engine, st, logger, cfg.Server.ContactRatePerMinute)
			router := api.NewRouter(handler, cfg.Server.AllowedOrigins)

			server := &http.Server{
				Addr:              address,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", zap.String("address", address))
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "listen address (overrides config)")
	return cmd
}
