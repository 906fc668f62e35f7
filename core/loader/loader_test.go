package loader_test

import (
	"errors"
	"testing"

	"lincloud/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := new(mockFeature)
	enabled.On("Name").Return("enabled")
	enabled.On("IsEnabled").Return(true)
	enabled.On("Load", mock.Anything).Return(nil).Once()

	disabled := new(mockFeature)
	disabled.On("Name").Return("disabled")
	disabled.On("IsEnabled").Return(false)

	m := loader.NewManager(nil)
	m.Register(enabled)
	m.Register(disabled)

	assert.NoError(t, m.LoadAll(app))
	enabled.AssertExpectations(t)
	disabled.AssertNotCalled(t, "Load", mock.Anything)
}

func TestManager_LoadAllFailure(t *testing.T) {
	broken := new(mockFeature)
	broken.On("Name").Return("broken")
	broken.On("IsEnabled").Return(true)
	broken.On("Load", mock.Anything).Return(errors.New("bad route"))

	after := new(mockFeature)
	after.On("Name").Return("after")
	after.On("IsEnabled").Return(true)

	m := loader.NewManager(nil)
	m.Register(broken)
	m.Register(after)

	err := m.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "failed to load feature broken: bad route")
	after.AssertNotCalled(t, "Load", mock.Anything)
}
