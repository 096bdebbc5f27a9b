package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockEngineChecker struct {
	err error
}

func (m *mockEngineChecker) Health(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockEngineChecker{})
	r := svc.Check(context.Background())

	assert.Equal(t, Healthy, r.Status)
	assert.Equal(t, CheckOK, r.Checks["database"])
	assert.Equal(t, CheckOK, r.Checks["engine"])
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, &mockEngineChecker{})
	r := svc.Check(context.Background())

	assert.Equal(t, Degraded, r.Status)
	assert.Equal(t, CheckError, r.Checks["database"])
	assert.Equal(t, CheckOK, r.Checks["engine"])
}

func TestCheck_EngineError(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockEngineChecker{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	assert.Equal(t, Degraded, r.Status)
	assert.Equal(t, CheckError, r.Checks["engine"])
}

func TestCheck_NilDependenciesSkipped(t *testing.T) {
	svc := New(nil, nil)
	r := svc.Check(context.Background())

	assert.Equal(t, Healthy, r.Status)
	assert.Empty(t, r.Checks)
}
