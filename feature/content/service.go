package content

import "go.uber.org/zap"

// Service describes what is served.
type Service struct {
	root   string
	browse bool
	logger *zap.Logger
}

// NewService creates a new content service for root.
func NewService(root string, browse bool, logger *zap.Logger) *Service {
	return &Service{root: root, browse: browse, logger: logger}
}

// Root returns the directory being served.
func (s *Service) Root() string {
	return s.root
}
