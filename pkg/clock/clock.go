package clock

import (
	"sync"
	"time"
)

// Clock reads the wall clock.
type Clock struct{}

func New() *Clock {
	return &Clock{}
}

func (c *Clock) Now() time.Time {
	return time.Now()
}

// Mock is a manually driven clock for tests. Every Now call advances it by Step.
type Mock struct {
	now  time.Time
	step time.Duration
	mx   *sync.Mutex
}

func NewMock(start time.Time, step time.Duration) *Mock {
	return &Mock{
		now:  start,
		step: step,
		mx:   &sync.Mutex{},
	}
}

func (m *Mock) Now() time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()

	res := m.now
	m.now = m.now.Add(m.step)
	return res
}

func (m *Mock) Advance(d time.Duration) {
	m.mx.Lock()
	defer m.mx.Unlock()

	m.now = m.now.Add(d)
}
