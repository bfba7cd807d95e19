package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/washify/booking/internal/domain"
	"github.com/washify/booking/internal/service/packages"
	"go.uber.org/zap"
)

type PackageHandler struct {
	service packages.PackageUseCase
	log     *zap.SugaredLogger
}

type packageResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

func NewPackageHandler(service packages.PackageUseCase, log *zap.SugaredLogger) *PackageHandler {
	return &PackageHandler{service: service, log: log}
}

func (h *PackageHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *PackageHandler) list(c *gin.Context) {
	active, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.log.Errorw("list packages failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	out := make([]packageResponse, 0, len(active))
	for _, p := range active {
		out = append(out, toPackageResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func toPackageResponse(p domain.ServicePackage) packageResponse {
	return packageResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		DurationMinutes: p.DurationMinutes,
	}
}
