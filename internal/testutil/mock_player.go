//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/doudizhu-tally/internal/tally"
)

// MockSoundPlayer 音效播放 mock
type MockSoundPlayer struct {
	mock.Mock
}

func (m *MockSoundPlayer) Play(name string) {
	m.Called(name)
}

// MockRecorder 操作记录 mock
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ev tally.Event) {
	m.Called(ev)
}

// SimpleRecorder 简单的记录器，不使用 testify（用于不需要断言调用的测试）
type SimpleRecorder struct {
	Events []tally.Event
}

func (r *SimpleRecorder) Record(ev tally.Event) {
	r.Events = append(r.Events, ev)
}

// Kinds returns the kinds of the recorded events in order.
func (r *SimpleRecorder) Kinds() []tally.EventKind {
	kinds := make([]tally.EventKind, len(r.Events))
	for i, ev := range r.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}
