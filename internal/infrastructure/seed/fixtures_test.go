package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
)

func TestDemo(t *testing.T) {
	f := Demo("h")

	require.Len(t, f.Users, 2)
	assert.Equal(t, entity.RoleUser, f.Users[0].Role)
	assert.Equal(t, entity.RoleAgent, f.Users[1].Role)
	assert.Equal(t, "h", f.Users[1].Password)

	require.Len(t, f.Properties, 6)
	for _, p := range f.Properties {
		assert.Equal(t, "2", p.PostedBy, p.ID)
		assert.True(t, p.Type.Valid(), p.ID)
		assert.Len(t, p.Images, 3, p.ID)
		assert.Greater(t, p.Price, int64(0), p.ID)
	}
	assert.Equal(t, "https://images.pexels.com/photos/8092/pexels-photo.jpg", f.Properties[4].Images[2])

	require.Len(t, f.Saved, 2)
	assert.Equal(t, "2", f.Saved[0].PropertyID)
	assert.Equal(t, "5", f.Saved[1].PropertyID)
}
