package listener

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"lincloud/core/address"
	"lincloud/core/apperror"
	"lincloud/core/banner"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultGracePeriod is how long in-flight requests may run after shutdown
// is requested.
const DefaultGracePeriod = 3 * time.Second

// AppFactory builds the app serving the canonical root directory.
type AppFactory func(root string) (*fiber.App, error)

// Bootstrap starts the content app on a set of endpoints.
type Bootstrap struct {
	newApp AppFactory
	logger *zap.Logger
	grace  time.Duration
	out    io.Writer
	scheme string
}

// NewBootstrap creates a Bootstrap. A non-positive grace selects
// DefaultGracePeriod.
func NewBootstrap(newApp AppFactory, logger *zap.Logger, grace time.Duration) *Bootstrap {
	if logger == nil {
		logger = zap.NewNop()
	}
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	return &Bootstrap{
		newApp: newApp,
		logger: logger,
		grace:  grace,
		out:    os.Stdout,
		scheme: "http",
	}
}

// WithOutput sets where the startup report is printed.
func (b *Bootstrap) WithOutput(w io.Writer) *Bootstrap {
	b.out = w
	return b
}

// Running is a started app. Wait blocks until it stops.
type Running struct {
	root     string
	listener *MultiListener
	group    *errgroup.Group
}

// Root returns the canonical directory being served.
func (r *Running) Root() string {
	return r.root
}

// Addrs returns the bound socket addresses.
func (r *Running) Addrs() []string {
	addrs := r.listener.Addrs()
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

// Wait blocks until the app has shut down.
func (r *Running) Wait() error {
	return r.group.Wait()
}

// Run starts the app and blocks until ctx is cancelled and the app has
// shut down.
func (b *Bootstrap) Run(ctx context.Context, endpoints []address.Endpoint, path string) error {
	r, err := b.Start(ctx, endpoints, path)
	if err != nil {
		return err
	}
	return r.Wait()
}

// Start canonicalizes path, binds every endpoint and serves in the
// background until ctx is cancelled.
func (b *Bootstrap) Start(ctx context.Context, endpoints []address.Endpoint, path string) (*Running, error) {
	root, err := CanonicalPath(path)
	if err != nil {
		return nil, err
	}

	ln, err := Bind(ctx, endpoints)
	if err != nil {
		b.logger.Debug("Bind failed", zap.Stringer("reason", apperror.BindReasonOf(err)))
		return nil, err
	}

	app, err := b.newApp(root)
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("failed to build app: %w", err)
	}

	urls := address.URLs(endpoints, b.scheme)
	banner.PrintServing(b.out, root, urls)
	b.logger.Info("Server started", zap.String("root", root), zap.Strings("urls", urls))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := app.Listener(ln); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		b.logger.Info("Shutting down server...", zap.Duration("grace", b.grace))
		err := app.ShutdownWithTimeout(b.grace)
		// Serving may not have registered the listener yet.
		_ = ln.Close()
		if errors.Is(err, context.DeadlineExceeded) {
			b.logger.Warn("Grace period elapsed, dropping in-flight requests")
			return nil
		}
		return err
	})

	return &Running{root: root, listener: ln, group: g}, nil
}
