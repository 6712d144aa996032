// pkg/registry/registry_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndList(t *testing.T) {
	r := New()

	require.NoError(t, r.Register(Definition{Name: "talent-registration", Route: "/api/registrations", Method: "POST", Policy: "strict", Enabled: true}))
	require.NoError(t, r.Register(Definition{Name: "job-application", Route: "/api/applications", Method: "POST", Policy: "best-effort", Enabled: true}))

	defs := r.List()
	require.Len(t, defs, 2)
	// Sorted by name.
	assert.Equal(t, "job-application", defs[0].Name)
	assert.Equal(t, "talent-registration", defs[1].Name)

	def, ok := r.Get("job-application")
	require.True(t, ok)
	assert.Equal(t, "/api/applications", def.Route)
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(Definition{Name: "job-application"}))
	assert.Error(t, r.Register(Definition{Name: "job-application"}))
}

func TestRegistry_GetMissing(t *testing.T) {
	r := New()
	_, ok := r.Get("absent")
	assert.False(t, ok)
}
