//go:build !production

// Package testutil provides testify mocks for the board's collaborators.
package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/doudizhu-tally/internal/tally"
)

// MockRenderer 实现 tally.Renderer 的 mock
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) SetCellText(row, col int, text string) {
	m.Called(row, col, text)
}

func (m *MockRenderer) SetRemainingText(row, value int) {
	m.Called(row, value)
}

func (m *MockRenderer) SetRowBackground(row int, color tally.Color) {
	m.Called(row, color)
}

func (m *MockRenderer) SetCellBackground(row, col int, color tally.Color) {
	m.Called(row, col, color)
}

func (m *MockRenderer) ShowMessage(text string) {
	m.Called(text)
}

func (m *MockRenderer) LogDiagnostic(row, col, increment int) {
	m.Called(row, col, increment)
}

// AllowRender accepts any text and background call, leaving ShowMessage and
// LogDiagnostic to explicit expectations.
func (m *MockRenderer) AllowRender() *MockRenderer {
	m.On("SetCellText", mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("SetRemainingText", mock.Anything, mock.Anything).Maybe()
	m.On("SetRowBackground", mock.Anything, mock.Anything).Maybe()
	m.On("SetCellBackground", mock.Anything, mock.Anything, mock.Anything).Maybe()
	return m
}
