package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/models"
	"github.com/alerta-vecinal/api-go/utils"

	"github.com/xuri/excelize/v2"
)

type ComunidadController struct {
	DB *gorm.DB
}

type CrearComunidadRequest struct {
	Nombre    string `json:"nombre" binding:"required,min=3"`
	Direccion string `json:"direccion"`
	Admin     struct {
		Username  string `json:"username" binding:"required,min=3"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"admin" binding:"required"`
}

type AgregarMiembroRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type CrearInternaRequest struct {
	Titulo      string `json:"titulo" binding:"required,min=5"`
	Descripcion string `json:"descripcion" binding:"required,min=20"`
	Categoria   string `json:"categoria" binding:"required,oneof=ruido seguridad basura trafico infraestructura servicios vandalismo animales convivencia emergencia otro"`
}

func NewComunidadController(db *gorm.DB) *ComunidadController {
	return &ComunidadController{DB: db}
}

// PuedeAccederComunidad reports whether the authenticated claims belong to
// the community. Internal complaints never cross community boundaries,
// whatever the role.
func PuedeAccederComunidad(user *utils.UserClaims, comunidadID uint) bool {
	return user != nil && user.ComunidadID != 0 && user.ComunidadID == comunidadID
}

// CrearComunidad godoc
// @Summary Register a community together with its admin account
// @Description Both writes run in one transaction so a community can never exist without its admin
// @Tags comunidades
// @Accept json
// @Produce json
// @Param comunidad body CrearComunidadRequest true "Community registration"
// @Success 201 {object} StandardResponse
// @Router /comunidades [post]
func (cc *ComunidadController) CrearComunidad(c *gin.Context) {
	var req CrearComunidadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	comunidad := models.Comunidad{
		Nombre:       req.Nombre,
		Direccion:    req.Direccion,
		CodigoAcceso: utils.GenerarCodigoAcceso(),
	}

	tx := cc.DB.Begin()

	if err := tx.Create(&comunidad).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comunidad"})
		return
	}

	admin := models.User{
		Username:    req.Admin.Username,
		Email:       req.Admin.Email,
		Password:    string(hashedPassword),
		FirstName:   req.Admin.FirstName,
		LastName:    req.Admin.LastName,
		Role:        models.RolAdmin,
		ComunidadID: &comunidad.ID,
	}

	if err := tx.Create(&admin).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data: gin.H{
			"comunidad": comunidad,
			"admin": gin.H{
				"id":       admin.ID,
				"username": admin.Username,
				"email":    admin.Email,
			},
		},
		Message: "Comunidad registrada",
	})
}

// ObtenerComunidad godoc
// @Summary Community detail with members
// @Tags comunidades
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} models.Comunidad
// @Router /comunidades/{id} [get]
func (cc *ComunidadController) ObtenerComunidad(c *gin.Context) {
	comunidadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comunidad id"})
		return
	}

	var comunidad models.Comunidad
	result := cc.DB.Preload("Miembros").First(&comunidad, comunidadID)
	if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comunidad not found"})
		return
	} else if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comunidad"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: comunidad})
}

// ListarMiembros godoc
// @Summary List the members of a community
// @Tags comunidades
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} StandardResponse
// @Router /comunidades/{id}/miembros [get]
func (cc *ComunidadController) ListarMiembros(c *gin.Context) {
	comunidadID := c.Param("id")

	var miembros []models.User
	if err := cc.DB.Where("comunidad_id = ?", comunidadID).Order("created_at ASC").Find(&miembros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching miembros"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    miembros,
		Meta:    gin.H{"total": len(miembros)},
	})
}

// AgregarMiembro godoc
// @Summary Add a member account to a community
// @Tags comunidades
// @Accept json
// @Produce json
// @Param id path string true "Community ID"
// @Param miembro body AgregarMiembroRequest true "Member account"
// @Success 201 {object} StandardResponse
// @Router /comunidades/{id}/miembros [post]
func (cc *ComunidadController) AgregarMiembro(c *gin.Context) {
	comunidadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comunidad id"})
		return
	}

	var req AgregarMiembroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var comunidad models.Comunidad
	if err := cc.DB.First(&comunidad, comunidadID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comunidad not found"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	miembro := models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    string(hashedPassword),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Role:        models.RolMiembro,
		ComunidadID: &comunidad.ID,
	}

	if err := cc.DB.Create(&miembro).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data: gin.H{
			"id":       miembro.ID,
			"username": miembro.Username,
			"email":    miembro.Email,
			"role":     miembro.Role,
		},
		Message: "Miembro agregado",
	})
}

// EliminarMiembro godoc
// @Summary Remove a member from a community
// @Tags comunidades
// @Produce json
// @Param id path string true "Community ID"
// @Param userId path string true "User ID"
// @Success 200 {object} StandardResponse
// @Router /comunidades/{id}/miembros/{userId} [delete]
func (cc *ComunidadController) EliminarMiembro(c *gin.Context) {
	comunidadID := c.Param("id")
	userID := c.Param("userId")

	var miembro models.User
	if err := cc.DB.Where("id = ? AND comunidad_id = ?", userID, comunidadID).First(&miembro).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Miembro not found in this comunidad"})
		return
	}

	if miembro.Role == models.RolAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot remove the community admin"})
		return
	}

	if err := cc.DB.Delete(&miembro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete miembro"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Miembro eliminado"})
}

// ExportarMiembros godoc
// @Summary Export a community's member list as a spreadsheet
// @Tags comunidades
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Community ID"
// @Success 200 {file} binary
// @Router /comunidades/{id}/miembros/export [get]
func (cc *ComunidadController) ExportarMiembros(c *gin.Context) {
	comunidadID := c.Param("id")

	var miembros []models.User
	if err := cc.DB.Where("comunidad_id = ?", comunidadID).Order("created_at ASC").Find(&miembros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching miembros"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Miembros"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Usuario", "Nombre", "Apellido", "Email", "Teléfono", "Rol", "Alta"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, m := range miembros {
		values := []interface{}{m.ID, m.Username, m.FirstName, m.LastName, m.Email, m.Phone, m.Role, m.CreatedAt.Format("2006-01-02")}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=miembros_%s.xlsx", time.Now().Format("20060102")))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write spreadsheet"})
	}
}

// CrearInterna godoc
// @Summary File an internal complaint in a community
// @Tags internas
// @Accept json
// @Produce json
// @Param id path string true "Community ID"
// @Param denuncia body CrearInternaRequest true "Internal complaint"
// @Success 201 {object} models.DenunciaInterna
// @Router /comunidades/{id}/internas [post]
func (cc *ComunidadController) CrearInterna(c *gin.Context) {
	user := utils.GetUser(c)
	comunidadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comunidad id"})
		return
	}

	if !PuedeAccederComunidad(user, uint(comunidadID)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a member of this comunidad"})
		return
	}

	var req CrearInternaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var comunidad models.Comunidad
	if err := cc.DB.First(&comunidad, comunidadID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comunidad not found"})
		return
	}

	interna := models.DenunciaInterna{
		ComunidadID: comunidad.ID,
		AutorID:     user.UserID,
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		Estado:      models.EstadoPendiente,
		CreatedAt:   time.Now(),
	}

	if err := cc.DB.Create(&interna).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create denuncia interna"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: interna})
}

// ListarInternas godoc
// @Summary List a community's internal complaints
// @Tags internas
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} StandardResponse
// @Router /comunidades/{id}/internas [get]
func (cc *ComunidadController) ListarInternas(c *gin.Context) {
	comunidadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comunidad id"})
		return
	}

	if !PuedeAccederComunidad(utils.GetUser(c), uint(comunidadID)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a member of this comunidad"})
		return
	}

	var internas []models.DenunciaInterna
	if err := cc.DB.Preload("Autor").
		Where("comunidad_id = ?", comunidadID).
		Order("created_at DESC").
		Find(&internas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching denuncias internas"})
		return
	}

	for i := range internas {
		internas[i].Estado = models.NormalizarEstado(internas[i].Estado)
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    internas,
		Meta:    gin.H{"total": len(internas)},
	})
}

// ActualizarEstadoInterna godoc
// @Summary Change the status of an internal complaint
// @Tags internas
// @Accept json
// @Produce json
// @Param id path string true "Community ID"
// @Param internaId path string true "Internal complaint ID"
// @Success 200 {object} StandardResponse
// @Router /comunidades/{id}/internas/{internaId}/estado [put]
func (cc *ComunidadController) ActualizarEstadoInterna(c *gin.Context) {
	comunidadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comunidad id"})
		return
	}
	internaID := c.Param("internaId")

	if !PuedeAccederComunidad(utils.GetUser(c), uint(comunidadID)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a member of this comunidad"})
		return
	}

	var req ActualizarEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var interna models.DenunciaInterna
	if err := cc.DB.Where("id = ? AND comunidad_id = ?", internaID, comunidadID).First(&interna).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denuncia interna not found"})
		return
	}

	if err := cc.DB.Model(&interna).Updates(map[string]interface{}{
		"estado":     req.Estado,
		"updated_at": time.Now(),
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update estado"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"id": interna.ID, "estado": req.Estado},
	})
}
