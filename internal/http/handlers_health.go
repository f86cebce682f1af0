package httpx

import "net/http"

// healthPayload is the liveness body for load balancer checks. Backend
// reachability is not part of this check; pages degrade individually when
// the backend is unreachable.
type healthPayload struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, healthPayload{Status: "ok", Service: "kinship-ui"})
}
