package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/s448/event-horizon/internal/config"
	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/gateway"
	"github.com/s448/event-horizon/internal/handler"
	"github.com/s448/event-horizon/internal/middleware"
	"github.com/s448/event-horizon/internal/notification"
	"github.com/s448/event-horizon/internal/payment"
	"github.com/s448/event-horizon/internal/refresher"
	"github.com/s448/event-horizon/internal/router"
	"github.com/s448/event-horizon/internal/session"
	"github.com/s448/event-horizon/internal/store"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	gw         *gateway.Gateway
	sessions   *session.Manager
	events     *store.Events
	bookings   *store.Bookings
	refresher  *refresher.Refresher
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventHorizon",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initComponents(); err != nil {
		return nil, fmt.Errorf("init components: %w", err)
	}

	return app, nil
}

// initComponents wires the single gateway into the session manager, the two
// collection stores and the payment recorder, then hangs the HTTP facade in
// front of them.
func (a *App) initComponents() error {
	a.gw = gateway.New(a.cfg.RemoteStore.URL, a.cfg.RemoteStore.AnonKey, a.log)

	users := store.NewUsers(a.gw, a.log)
	a.sessions = session.New(a.gw, users, a.log)

	a.events = store.NewEvents(a.gw, a.sessions, a.log)
	a.bookings = store.NewBookings(a.gw, a.sessions, a.log)

	payments := store.NewPayments(a.gw, a.log)
	charger, err := a.initCharger()
	if err != nil {
		return err
	}
	checkout := payment.NewService(charger, payments, a.log)

	notifier, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.refresher = refresher.New(a.cfg.Refresher.Interval, a.log)
	a.refresher.Register("events", a.events)
	a.refresher.Register("bookings", a.bookings)

	h := handler.NewHandler(a.sessions, a.events, a.bookings, users, checkout, notifier)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) initCharger() (payment.Charger, error) {
	if a.cfg.Omise.SecretKey == "" {
		return payment.NewSimulatedCharger(a.log), nil
	}

	charger, err := payment.NewOmiseCharger(a.cfg.Omise.PublicKey, a.cfg.Omise.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("init charger: %w", err)
	}
	return charger, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listener first, probe second: a sign-in between the two is picked up
	// by the listener instead of being lost.
	if err := a.sessions.Start(ctx); err != nil {
		a.log.Warn("session probe failed, starting anonymous",
			logger.String("error", err.Error()),
		)
	}
	a.sessions.OnChange(func(p *domain.Principal) {
		a.bookings.OnPrincipalChange(ctx, p)
	})

	a.startStores(ctx)
	go a.refresher.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) startStores(ctx context.Context) {
	if err := a.events.Start(ctx); err != nil {
		a.log.Warn("events store start failed",
			logger.String("error", err.Error()),
		)
	}
	if err := a.bookings.Start(ctx); err != nil {
		a.log.Warn("bookings store start failed",
			logger.String("error", err.Error()),
		)
	}
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.events.Stop()
	a.bookings.Stop()
	a.sessions.Stop()
	a.gw.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "remote store connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
