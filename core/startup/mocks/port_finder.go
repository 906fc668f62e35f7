package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PortFinder is a mock implementation of startup.PortFinder.
type PortFinder struct {
	mock.Mock
}

// FreePort returns the port and error configured with On("FreePort").
func (m *PortFinder) FreePort() (uint16, error) {
	args := m.Called()
	return args.Get(0).(uint16), args.Error(1)
}
