package startup

import (
	"fmt"
	"net/netip"

	"go.uber.org/zap"
)

// Builder resolves startup requests into a ServiceConfig.
type Builder struct {
	logger *zap.Logger
	ports  PortFinder
	// localIP is swapped in tests to keep them off the network.
	localIP func() (netip.Addr, bool)
}

// NewBuilder creates a Builder that finds free ports on the loopback
// interface.
func NewBuilder(logger *zap.Logger) *Builder {
	return NewBuilderWithFinder(logger, LocalPortFinder{})
}

// NewBuilderWithFinder creates a Builder with a custom PortFinder.
func NewBuilderWithFinder(logger *zap.Logger, finder PortFinder) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		logger:  logger,
		ports:   finder,
		localIP: preferredOutboundIP,
	}
}

// Build resolves req into a ServiceConfig and logs a summary of the
// result.
func (b *Builder) Build(req Request) (ServiceConfig, error) {
	var (
		cfg ServiceConfig
		err error
	)

	switch r := req.(type) {
	case Explicit:
		cfg, err = b.buildExplicit(r)
	case FileBased:
		// Configuration files are not parsed yet; the default
		// configuration applies whatever the files contain.
		b.logger.Info("Configuration files supplied, using default configuration",
			zap.Strings("files", r.Files),
		)
		cfg = Default()
	case UseDefaults:
		cfg = Default()
	default:
		return ServiceConfig{}, fmt.Errorf("startup: unsupported request %T", req)
	}
	if err != nil {
		return ServiceConfig{}, err
	}

	b.summarize(cfg)
	return cfg, nil
}

func (b *Builder) buildExplicit(r Explicit) (ServiceConfig, error) {
	interfaces := NormalizeInterfaces(r.Interfaces)

	port, err := ResolvePort(r.Port, b.ports)
	if err != nil {
		return ServiceConfig{}, err
	}

	path := ResolvePath(r.Path, ExplicitDefaultPath)

	return NewServiceConfig(interfaces, port, path)
}

func (b *Builder) summarize(cfg ServiceConfig) {
	fields := []zap.Field{
		zap.Stringers("interfaces", cfg.interfaces),
		zap.Uint16("port", cfg.port),
		zap.String("path", cfg.path),
	}
	if b.localIP != nil {
		if ip, ok := b.localIP(); ok {
			fields = append(fields, zap.Stringer("local_ip", ip))
		}
	}
	b.logger.Info("Service starting", fields...)
}
