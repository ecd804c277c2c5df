package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/models"
)

// tableByEndpoint resolves the URL segment back to the registry table.
func tableByEndpoint(endpoint string) (models.TableName, error) {
	for _, table := range models.SyncOrder() {
		spec, err := models.Spec(table)
		if err != nil {
			return "", err
		}
		if spec.Endpoint == endpoint {
			return table, nil
		}
	}
	return "", ErrUnknownTable
}

func (h *Handler) checkChanges(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	since := queryInt64(r, "since", 0)

	writeJSON(w, http.StatusOK, h.authority.CheckForChanges(userID, since))
}

func (h *Handler) getChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table, err := tableByEndpoint(chi.URLParam(r, "table"))
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	userID := userIDFromContext(r.Context())
	since := queryInt64(r, "since", 0)
	limit := int(queryInt64(r, "limit", 500))

	records := h.authority.ChangesSince(userID, table, since, limit)
	writeJSON(w, http.StatusOK, models.ChangesPage{Records: records})
}

func (h *Handler) batchUpsert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table, err := tableByEndpoint(chi.URLParam(r, "table"))
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var req models.BatchUpsertRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("failed to decode batch upsert request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := userIDFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.authority.BatchUpsert(userID, table, req.Records))
}

func (h *Handler) deleteWithVersion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table, err := tableByEndpoint(chi.URLParam(r, "table"))
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	userID := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")
	expectedVersion := queryInt64(r, "version", 0)

	outcome := h.authority.DeleteWithVersion(userID, table, id, expectedVersion)

	status := http.StatusOK
	if outcome.Error == models.DeleteErrVersionConflict {
		status = http.StatusConflict
	}
	writeJSON(w, status, outcome)
}

type issueTokenRequest struct {
	UserID int64 `json:"user_id"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// issueToken mints a signed bearer token for the given user ID. Dev-only
// convenience; a production authority has a real auth flow.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("failed to decode token request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 {
		http.Error(w, "user_id must be positive", http.StatusBadRequest)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(req.UserID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})

	signed, err := token.SignedString(h.signKey)
	if err != nil {
		log.Err(err).Msg("failed to sign token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, issueTokenResponse{Token: signed})
}

func queryInt64(r *http.Request, name string, fallback int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
