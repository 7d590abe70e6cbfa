package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"customer-service/internal/api/handler/dto"
)

const (
	serviceName    = "Customer Service REST API"
	serviceVersion = "1.0"
)

type ServiceHandler struct {
	logger *slog.Logger
}

func NewServiceHandler(l *slog.Logger) *ServiceHandler {
	if l == nil {
		panic("logger cannot be nil")
	}
	return &ServiceHandler{
		logger: l.With("component", "ServiceHandler"),
	}
}

// GetServiceInfo handles GET /
// @Summary Service metadata
// @Description Returns the service name, version and the URL of the customer collection.
// @Tags Service
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse "Service metadata"
// @Router / [get]
func (h *ServiceHandler) GetServiceInfo(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received service info request")

	resp := dto.ServiceInfoResponse{
		Name:    serviceName,
		Version: serviceVersion,
		Paths:   fmt.Sprintf("%s/customers", requestBaseURL(r)),
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetHealth handles GET /health
// @Summary Liveness probe
// @Description Reports that the service process is up. No downstream checks are performed.
// @Tags Service
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Router /health [get]
func (h *ServiceHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received health check request")

	respondJSON(w, http.StatusOK, dto.HealthResponse{
		Status:  http.StatusOK,
		Message: "Healthy",
	})
}
