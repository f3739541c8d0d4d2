package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/soffit/config"
	"github.com/jonwraymond/soffit/observe"
)

const shutdownTimeout = 15 * time.Second

type rootOptions struct {
	configFile string
	listenAddr string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "soffit-renderer",
		Short: "Render soffit views for a portal.",
		Long: `soffit-renderer accepts render requests from a portal, selects the
view for the payload's mode and window state, and returns the rendered
markup with the module's Cache-Control policy.

Configuration is read from the environment (SOFFIT_HELLO_CACHE_MAX_AGE for
soffit.hello.cache.max-age) and then from the optional YAML --config file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lookup, err := opts.lookup()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), lookup)
		},
	}
	cmd.Flags().StringVar(&opts.configFile, "config", "", "YAML property file")
	cmd.Flags().StringVar(&opts.listenAddr, "listen", "", "listen address (overrides "+config.KeyListenAddr+")")
	return cmd
}

// lookup layers the flag overrides over the environment over the file.
func (o *rootOptions) lookup() (config.Lookup, error) {
	overrides := map[string]string{}
	if o.listenAddr != "" {
		overrides[config.KeyListenAddr] = o.listenAddr
	}
	chain := config.Chain{config.NewProperties(overrides), config.EnvLookup{}}
	if o.configFile != "" {
		props, err := config.LoadFile(o.configFile)
		if err != nil {
			return nil, err
		}
		chain = append(chain, props)
	}
	return chain, nil
}

func serve(ctx context.Context, lookup config.Lookup) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, lookup)
	if err != nil {
		return err
	}
	logger := a.observer.Logger()

	srv := &http.Server{
		Addr:              a.settings.ListenAddr,
		Handler:           a.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "renderer listening",
			observe.F("addr", srv.Addr),
			observe.F("views_location", a.settings.ViewsLocation),
			observe.F("document_root", a.settings.DocumentRoot),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = a.close(context.Background())
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "renderer shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := srv.Shutdown(shutdownCtx)
	return errors.Join(shutdownErr, a.close(shutdownCtx))
}
