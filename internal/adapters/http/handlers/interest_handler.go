package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
)

// ListInterests handles GET /api/v1/interests. The catalogue is static, so
// the handler needs no service.
func ListInterests(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToInterestListResponse(registration.Interests()))
}
