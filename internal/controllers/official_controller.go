package controllers

import (
	"errors"
	"net/http"

	"github.com/reinzjustinedagang/osca-backend/internal/dtos"
	"github.com/reinzjustinedagang/osca-backend/internal/middleware"
	"github.com/reinzjustinedagang/osca-backend/internal/services"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

// Official handlers accept multipart form payloads so an image file can
// ride along with the text fields.
type OfficialController struct {
	svc        services.OfficialService
	uploadsDir string
}

func NewOfficialController(svc services.OfficialService, uploadsDir string) *OfficialController {
	return &OfficialController{svc: svc, uploadsDir: uploadsDir}
}

const maxUploadMemory = 10 << 20 // 10 MiB

// GetMunicipalHandler => GET /api/officials/municipal
func (c *OfficialController) GetMunicipalHandler(w http.ResponseWriter, r *http.Request) {
	officials, err := c.svc.GetMunicipalOfficials(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve municipal officials.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, officials)
}

// AddMunicipalHandler => POST /api/officials/municipal (auth required)
func (c *OfficialController) AddMunicipalHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid form payload", nil, err)
		return
	}

	name := r.FormValue("name")
	position := r.FormValue("position")
	officialType := r.FormValue("type")
	if name == "" || position == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and position are required", nil)
		return
	}

	image, err := saveUploadedImage(r, c.uploadsDir)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store uploaded image.", nil, err)
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	id, err := c.svc.AddMunicipalOfficial(r.Context(), name, position, officialType, image, actor)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to add municipal official.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreatedResponse{
		Message:  "Municipal official added.",
		InsertID: id,
	})
}

// UpdateMunicipalHandler => PUT /api/officials/municipal/{id} (auth required)
func (c *OfficialController) UpdateMunicipalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid form payload", nil, err)
		return
	}

	image, err := saveUploadedImage(r, c.uploadsDir)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store uploaded image.", nil, err)
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	err = c.svc.UpdateMunicipalOfficial(r.Context(), id,
		r.FormValue("name"), r.FormValue("position"), r.FormValue("type"), image, actor)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Municipal official not found.", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update municipal official.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Municipal official updated."})
}

// DeleteMunicipalHandler => DELETE /api/officials/municipal/{id} (auth required)
func (c *OfficialController) DeleteMunicipalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	if err := c.svc.DeleteMunicipalOfficial(r.Context(), id, actor); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Municipal official not found.", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete municipal official.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Municipal official deleted."})
}

// GetBarangayHandler => GET /api/officials/barangay
func (c *OfficialController) GetBarangayHandler(w http.ResponseWriter, r *http.Request) {
	officials, err := c.svc.GetBarangayOfficials(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve barangay officials.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, officials)
}

// AddBarangayHandler => POST /api/officials/barangay (auth required)
func (c *OfficialController) AddBarangayHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid form payload", nil, err)
		return
	}

	barangayName := r.FormValue("barangay_name")
	presidentName := r.FormValue("president_name")
	position := r.FormValue("position")
	if barangayName == "" || presidentName == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Barangay name and president name are required", nil)
		return
	}

	image, err := saveUploadedImage(r, c.uploadsDir)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store uploaded image.", nil, err)
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	id, err := c.svc.AddBarangayOfficial(r.Context(), barangayName, presidentName, position, image, actor)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to add barangay official.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreatedResponse{
		Message:  "Barangay official added.",
		InsertID: id,
	})
}

// UpdateBarangayHandler => PUT /api/officials/barangay/{id} (auth required)
//
// A barangay official's photo survives updates that do not replace it:
// only an uploaded file writes the image column.
func (c *OfficialController) UpdateBarangayHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid form payload", nil, err)
		return
	}

	newImage, err := saveUploadedImage(r, c.uploadsDir)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store uploaded image.", nil, err)
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	err = c.svc.UpdateBarangayOfficial(r.Context(), id,
		r.FormValue("barangay_name"), r.FormValue("president_name"), r.FormValue("position"), newImage, actor)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Barangay official not found.", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update barangay official.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Barangay official updated."})
}

// DeleteBarangayHandler => DELETE /api/officials/barangay/{id} (auth required)
func (c *OfficialController) DeleteBarangayHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	if err := c.svc.DeleteBarangayOfficial(r.Context(), id, actor); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Barangay official not found.", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete barangay official.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Barangay official deleted."})
}
