package controllers

import (
	"net/http"

	"github.com/havenstay/backend/internal/dtos"
	"github.com/havenstay/backend/internal/store"
	"github.com/havenstay/backend/internal/utils"
)

type HealthController struct {
	st store.Store
}

func NewHealthController(st store.Store) *HealthController {
	return &HealthController{st: st}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// Probe the only external dependency: the persistent store.
	if err := c.st.Save("health_probe", []byte(`"ok"`)); err != nil {
		utils.Logger.WithError(err).Error("store unhealthy")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Service unhealthy",
			nil,
			err,
		)
		return
	}
	_ = c.st.Delete("health_probe")

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
