package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savane-sarl/gestion-api/internal/domain/entity"
)

func TestParseRole_CatalogoCerrado(t *testing.T) {
	for _, r := range entity.Roles() {
		parsed, ok := entity.ParseRole(string(r))
		assert.True(t, ok, "rol %s debe ser válido", r)
		assert.Equal(t, r, parsed)
	}

	for _, s := range []string{"", "admin", "ACCOUNTING", "commercial", "gerencia"} {
		_, ok := entity.ParseRole(s)
		assert.False(t, ok, "%q no pertenece al catálogo", s)
	}
}

func TestRoles_OrdenEstable(t *testing.T) {
	assert.Equal(t, entity.Roles(), entity.Roles(),
		"el orden debe ser estable entre llamadas")
	assert.Len(t, entity.Roles(), 6)
}

func TestIsDefaultAdmin(t *testing.T) {
	admin := entity.User{Username: entity.DefaultAdminUsername}
	assert.True(t, admin.IsDefaultAdmin())

	other := entity.User{Username: "Administrator"}
	assert.False(t, other.IsDefaultAdmin(), "la comparación es exacta")
}
