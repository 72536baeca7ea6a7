package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered    uint64
	LoginsSucceeded    uint64
	LoginsFailed       uint64
	AdoptionsCreated   uint64
	AdoptionsCompleted uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersRegistered    uint64
	loginsSucceeded    uint64
	loginsFailed       uint64
	adoptionsCreated   uint64
	adoptionsCompleted uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:    atomic.LoadUint64(&m.usersRegistered),
		LoginsSucceeded:    atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:       atomic.LoadUint64(&m.loginsFailed),
		AdoptionsCreated:   atomic.LoadUint64(&m.adoptionsCreated),
		AdoptionsCompleted: atomic.LoadUint64(&m.adoptionsCompleted),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSucceeded increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSucceeded() {
	atomic.AddUint64(&m.loginsSucceeded, 1)
}

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginsFailed, 1)
}

// IncAdoptionCreated increments the adoption request counter.
func (m *InMemoryRecorder) IncAdoptionCreated() {
	atomic.AddUint64(&m.adoptionsCreated, 1)
}

// IncAdoptionCompleted increments the completed adoption counter.
func (m *InMemoryRecorder) IncAdoptionCompleted() {
	atomic.AddUint64(&m.adoptionsCompleted, 1)
}
