// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/registration-flow/internal/domain"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

// pictureFormField is the multipart form field carrying the profile picture.
const pictureFormField = "picture"

// RegistrationHandler handles HTTP requests for the multi-screen
// registration flow.
type RegistrationHandler struct {
	svc            ports.RegistrationService
	maxUploadBytes int64
}

// NewRegistrationHandler creates a new RegistrationHandler with the given
// service port. maxUploadBytes bounds the picture upload request body.
func NewRegistrationHandler(svc ports.RegistrationService, maxUploadBytes int64) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// Start handles POST /api/v1/registrations.
func (h *RegistrationHandler) Start(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Start(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/registrations/"+view.ID)
	writeJSON(w, http.StatusCreated, dto.ToRegistrationResponse(view))
}

// Get handles GET /api/v1/registrations/{id}.
func (h *RegistrationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	h.respond(w, r, view, err)
}

// Navigate handles POST /api/v1/registrations/{id}/navigate.
func (h *RegistrationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.NavigateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.Navigate(r.Context(), id, registration.Screen(req.Screen))
	h.respond(w, r, view, err)
}

// ToggleTheme handles POST /api/v1/registrations/{id}/theme.
func (h *RegistrationHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.svc.ToggleTheme(r.Context(), id)
	h.respond(w, r, view, err)
}

// ValidateAccount handles POST /api/v1/registrations/{id}/account/validate.
func (h *RegistrationHandler) ValidateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ValidateAccountRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	result, err := h.svc.ValidateAccount(r.Context(), id, req.ToForm(), req.ToTouched())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccountValidationResponse(result))
}

// SubmitAccount handles POST /api/v1/registrations/{id}/account.
func (h *RegistrationHandler) SubmitAccount(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.SubmitAccount(r.Context(), id, req.ToForm())
	h.respond(w, r, view, err)
}

// ToggleInterest handles POST /api/v1/registrations/{id}/profile/interests/{interest}.
func (h *RegistrationHandler) ToggleInterest(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	raw, err := pathParam(r, "interest")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	interest, err := url.PathUnescape(raw)
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{registration.FieldInterest: "invalid escaping"},
		})
		return
	}

	view, err := h.svc.ToggleInterest(r.Context(), id, interest)
	h.respond(w, r, view, err)
}

// UploadPicture handles PUT /api/v1/registrations/{id}/profile/picture.
// The image arrives as the multipart "picture" field and is stored as a
// base64 data URL.
func (h *RegistrationHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	pic, err := h.readPicture(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.svc.UploadPicture(r.Context(), id, pic)
	h.respond(w, r, view, err)
}

// SubmitProfile handles POST /api/v1/registrations/{id}/profile.
func (h *RegistrationHandler) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.SubmitProfile(r.Context(), id, req.FullName)
	h.respond(w, r, view, err)
}

// SkipProfile handles POST /api/v1/registrations/{id}/profile/skip.
func (h *RegistrationHandler) SkipProfile(w http.ResponseWriter, r *http.Request) {
	id, err := flowID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.svc.SkipProfile(r.Context(), id)
	h.respond(w, r, view, err)
}

// respond writes either the error or the flow view with 200 OK.
func (h *RegistrationHandler) respond(w http.ResponseWriter, r *http.Request, view *ports.FlowView, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToRegistrationResponse(view))
}

// readPicture reads the multipart picture field and encodes it as a data
// URL. The content type is sniffed from the bytes, not taken from the client.
func (h *RegistrationHandler) readPicture(w http.ResponseWriter, r *http.Request) (registration.Picture, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, _, err := r.FormFile(pictureFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return registration.Picture{}, pictureError(fmt.Sprintf("must be at most %d bytes", maxErr.Limit))
		}
		return registration.Picture{}, pictureError(domain.MsgRequired)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return registration.Picture{}, pictureError("could not be read")
	}
	if len(data) == 0 {
		return registration.Picture{}, pictureError(domain.MsgRequired)
	}

	contentType := http.DetectContentType(data)
	return registration.Picture{
		ContentType: contentType,
		DataURL:     "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Size:        len(data),
	}, nil
}

func pictureError(msg string) error {
	return &domain.ValidationError{
		Fields: map[string]string{registration.FieldPicture: msg},
	}
}
