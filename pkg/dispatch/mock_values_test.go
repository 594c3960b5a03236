package dispatch

import (
	"github.com/stretchr/testify/mock"

	"github.com/genprop/genprop-go/pkg/nodemap"
)

// mockValues is a testify mock of nodemap.Values.
type mockValues struct {
	mock.Mock
}

var _ nodemap.Values = (*mockValues)(nil)

func (m *mockValues) Integer(name string) (int64, error) {
	args := m.Called(name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockValues) IntegerRange(name string) (int64, int64, error) {
	args := m.Called(name)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *mockValues) SetInteger(name string, value int64) error {
	return m.Called(name, value).Error(0)
}

func (m *mockValues) Boolean(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *mockValues) SetBoolean(name string, value bool) error {
	return m.Called(name, value).Error(0)
}

func (m *mockValues) Float(name string) (float64, error) {
	args := m.Called(name)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockValues) FloatRange(name string) (float64, float64, error) {
	args := m.Called(name)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

func (m *mockValues) SetFloat(name string, value float64) error {
	return m.Called(name, value).Error(0)
}

func (m *mockValues) String(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *mockValues) SetString(name string, value string) error {
	return m.Called(name, value).Error(0)
}

func (m *mockValues) EnumValue(name string) (int64, error) {
	args := m.Called(name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockValues) SetEnumValue(name string, value int64) error {
	return m.Called(name, value).Error(0)
}
