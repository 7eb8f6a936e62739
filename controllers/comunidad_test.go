package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/controllers"
	"github.com/alerta-vecinal/api-go/models"
	"github.com/alerta-vecinal/api-go/utils"
)

func TestPuedeAccederComunidad(t *testing.T) {
	miembro := &utils.UserClaims{UserID: 7, Role: models.RolMiembro, ComunidadID: 3}
	admin := &utils.UserClaims{UserID: 1, Role: models.RolAdmin, ComunidadID: 3}

	assert.True(t, controllers.PuedeAccederComunidad(miembro, 3))
	assert.True(t, controllers.PuedeAccederComunidad(admin, 3))

	// Belonging to community A grants nothing in community B, admin or not.
	assert.False(t, controllers.PuedeAccederComunidad(miembro, 5))
	assert.False(t, controllers.PuedeAccederComunidad(admin, 5))
}

func TestPuedeAccederComunidadSinComunidad(t *testing.T) {
	assert.False(t, controllers.PuedeAccederComunidad(nil, 3))

	suelto := &utils.UserClaims{UserID: 9, Role: models.RolMiembro}
	assert.False(t, controllers.PuedeAccederComunidad(suelto, 3))
	assert.False(t, controllers.PuedeAccederComunidad(suelto, 0), "a zero claim never matches")
}
