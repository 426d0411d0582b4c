package api

import "net/http"

// HealthResponse — ответ health-check.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthz проверяет доступность базы данных.
//
// Ответы:
//   - 200 OK: {"status":"ok"};
//   - 503 Service Unavailable: база недоступна.
//
// @Summary      Health check
// @Description  Pings the database.
// @Tags         health
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /healthz [get]
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Health.Check(r.Context()); err != nil {
		h.Log.Logger.Sugar().Errorw("health check failed", "error", err)
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
