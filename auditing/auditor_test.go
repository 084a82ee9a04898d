package auditing

import (
	"context"
	"errors"
	"testing"

	"github.com/Reactman/wakanda/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_BlankSelectsSystem(t *testing.T) {
	for _, name := range []string{"", "   ", SystemAuditor} {
		a, err := Resolve(name)
		require.NoError(t, err)

		who, ok := a.CurrentAuditor(context.Background())
		assert.True(t, ok)
		assert.Equal(t, "system", who)
	}
}

func TestResolve_RequestAuditorReadsContext(t *testing.T) {
	a, err := Resolve(RequestAuditor)
	require.NoError(t, err)

	_, ok := a.CurrentAuditor(context.Background())
	assert.False(t, ok)

	who, ok := a.CurrentAuditor(WithAuditor(context.Background(), "alice"))
	assert.True(t, ok)
	assert.Equal(t, "alice", who)
}

func TestResolve_UnknownName(t *testing.T) {
	a, err := Resolve("ldap")
	assert.Nil(t, a)

	var cfgErr *core.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "auditor_aware", cfgErr.Key)
	assert.Equal(t, "ldap", cfgErr.Value)
	assert.ErrorIs(t, err, ErrUnknownAuditor)
}

func TestResolve_FactoryFailures(t *testing.T) {
	boom := errors.New("directory unreachable")
	Register("test-failing", func() (AuditorAware, error) { return nil, boom })
	Register("test-panicking", func() (AuditorAware, error) { panic("no tenant") })
	Register("test-nil", func() (AuditorAware, error) { return nil, nil })

	_, err := Resolve("test-failing")
	assert.ErrorIs(t, err, boom)

	var cfgErr *core.ConfigurationError
	_, err = Resolve("test-panicking")
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "no tenant")

	_, err = Resolve("test-nil")
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "test-nil", cfgErr.Value)
}

func TestRegister_CustomAuditor(t *testing.T) {
	Register("test-fixed", func() (AuditorAware, error) {
		return AuditorFunc(func(context.Context) (string, bool) { return "batch-job", true }), nil
	})
	assert.Contains(t, Names(), "test-fixed")
	assert.Contains(t, Names(), SystemAuditor)

	a, err := Resolve("test-fixed")
	require.NoError(t, err)
	who, ok := a.CurrentAuditor(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "batch-job", who)
}

func TestAuditorFrom_BlankIsAbsent(t *testing.T) {
	_, ok := AuditorFrom(WithAuditor(context.Background(), "  "))
	assert.False(t, ok)

	//nolint:staticcheck // nil context is tolerated
	_, ok = AuditorFrom(nil)
	assert.False(t, ok)
}
