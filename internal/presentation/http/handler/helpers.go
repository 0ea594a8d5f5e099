package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/response"
)

// parseIDParam parses a uuid path parameter, answering 400 on failure.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "ID tidak valid")
		return uuid.Nil, false
	}
	return id, true
}

// parseToken parses a confirmation token, answering 400 on failure.
func parseToken(c *gin.Context, raw string) (uuid.UUID, bool) {
	token, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "Konfirmasi tidak valid atau sudah kedaluwarsa")
		return uuid.Nil, false
	}
	return token, true
}
