package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/reinzjustinedagang/osca-backend/internal/dtos"
	"github.com/reinzjustinedagang/osca-backend/internal/middleware"
	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/services"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

type CitizenController struct {
	svc services.SeniorCitizenService
}

func NewCitizenController(svc services.SeniorCitizenService) *CitizenController {
	return &CitizenController{svc: svc}
}

// GetByIDHandler => GET /api/senior-citizens/get/{id}
func (c *CitizenController) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	citizen, err := c.svc.GetByID(r.Context(), id)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve senior citizen.", nil, err)
		return
	}
	if citizen == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Senior citizen not found.", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, citizen)
}

// CreateHandler => POST /api/senior-citizens/create (auth required)
func (c *CitizenController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var sc models.SeniorCitizen
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if sc.FirstName == "" || sc.LastName == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "First and last name are required", nil)
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	id, err := c.svc.Create(r.Context(), &sc, actor)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create senior citizen.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreatedResponse{
		Message:  "Senior citizen created.",
		InsertID: id,
	})
}

// UpdateHandler => PUT /api/senior-citizens/update/{id} (auth required)
func (c *CitizenController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var sc models.SeniorCitizen
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	sc.ID = id

	actor := middleware.SessionUserFrom(r.Context())
	if err := c.svc.Update(r.Context(), &sc, actor); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Senior citizen not found or not updated.", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update senior citizen.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Senior citizen updated."})
}

// DeleteHandler => DELETE /api/senior-citizens/delete/{id} (auth required)
func (c *CitizenController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	if err := c.svc.Delete(r.Context(), id, actor); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Senior citizen not found or not deleted.", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete senior citizen.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Senior citizen deleted."})
}

// ListHandler => GET /api/senior-citizens
func (c *CitizenController) ListHandler(w http.ResponseWriter, r *http.Request) {
	citizens, err := c.svc.GetAll(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve senior citizens.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, citizens)
}

// PageHandler => GET /api/senior-citizens/page?page&limit
func (c *CitizenController) PageHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.GetPaginationParams(r)

	data, err := c.svc.GetPaginated(r.Context(), page, limit)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve paginated senior citizens.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, data)
}

// SearchHandler => GET /api/senior-citizens/search/{term}
func (c *CitizenController) SearchHandler(w http.ResponseWriter, r *http.Request) {
	term := mux.Vars(r)["term"]
	results, err := c.svc.Search(r.Context(), term)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to search senior citizens.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

// ByBarangayHandler => GET /api/senior-citizens/barangay/{name}
func (c *CitizenController) ByBarangayHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	results, err := c.svc.GetByBarangay(r.Context(), name)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve senior citizens for barangay.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

// pathID parses the {id} route variable, answering 400 itself on junk.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid id", nil, err)
		return 0, false
	}
	return id, true
}
