package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servibook/booking-api/internal/cache"
	"github.com/servibook/booking-api/internal/httperr"
	"github.com/servibook/booking-api/internal/httpresp"
	"github.com/servibook/booking-api/internal/models"
	"github.com/servibook/booking-api/internal/storage"
)

const maxImageUploadBytes = 5 << 20

type ServiceHandler struct {
	db     *gorm.DB
	cache  cache.Cache
	images storage.ImageStore
}

func NewServiceHandler(db *gorm.DB, c cache.Cache, images storage.ImageStore) *ServiceHandler {
	return &ServiceHandler{db: db, cache: c, images: images}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Duration    int      `json:"duration" binding:"required,min=1"`
	Image       string   `json:"image"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// --------- Public catalog ---------

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	key := cache.CatalogKey(category)
	if cached, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	q := h.db.Where("status = ?", models.ServiceStatusActive)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	if body, err := json.Marshal(services); err == nil {
		h.cache.Set(c.Request.Context(), key, string(body), cache.CatalogTTL)
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}
	httpresp.OK(c, &svc)
}

// --------- Admin ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	if !models.ValidCategory(category) {
		httperr.BadRequest(c, "invalid_category", "Unknown service category.")
		return
	}
	if *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Price must be zero or positive.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Price:       *req.Price,
		Duration:    req.Duration,
		Status:      models.ServiceStatusActive,
	}
	if req.Image != "" {
		svc.Image = req.Image
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.invalidateCatalog(c)
	httpresp.Created(c, &svc)
}

func (h *ServiceHandler) ListAll(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("created_at DESC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*req.Category))
		if !models.ValidCategory(category) {
			httperr.BadRequest(c, "invalid_category", "Unknown service category.")
			return
		}
		svc.Category = category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be zero or positive.")
			return
		}
		svc.Price = *req.Price
	}
	if req.Duration != nil {
		if *req.Duration < 1 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be at least one minute.")
			return
		}
		svc.Duration = *req.Duration
	}
	if req.Image != nil {
		svc.Image = *req.Image
	}
	if req.Status != nil {
		if *req.Status != models.ServiceStatusActive && *req.Status != models.ServiceStatusRetired {
			httperr.BadRequest(c, "invalid_service_status", "Unknown service status.")
			return
		}
		svc.Status = *req.Status
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.invalidateCatalog(c)
	httpresp.Action(c, "Service updated successfully", gin.H{"service": &svc})
}

// Deactivate retires a service. The record stays so existing bookings
// keep their reference.
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	svc.Status = models.ServiceStatusRetired
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not retire service.")
		return
	}

	h.invalidateCatalog(c)
	httpresp.Action(c, "Service deleted successfully", nil)
}

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		httperr.Internal(c, "image_storage_not_configured", "Image storage is not configured.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be 5MB or smaller.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	processed, err := storage.ProcessImage(file)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "The file is not a valid JPEG or PNG image.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Could not process the image.")
		return
	}

	key, err := h.images.Upload(c.Request.Context(), svc.ID, processed)
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Could not store the image.")
		return
	}

	svc.Image = key
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.invalidateCatalog(c)
	httpresp.Action(c, "Service image updated successfully", gin.H{"service": &svc})
}

func (h *ServiceHandler) invalidateCatalog(c *gin.Context) {
	h.cache.Delete(c.Request.Context(), cache.CatalogKeys()...)
}
