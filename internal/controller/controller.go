package controller

import (
	"errors"
	"net/http"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/dto"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// RespondError writes the failure envelope with a status derived from err.
func RespondError(ctx *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		details := make([]string, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, f.Error)
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ve.Error(), Details: details})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// RespondBindError reports a request that could not be decoded.
func RespondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request", Details: []string{err.Error()}})
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
