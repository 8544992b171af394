package upload

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cpeconf/service/internal/config"
	"github.com/cpeconf/service/internal/middleware"
	"github.com/cpeconf/service/internal/response"
)

// DetailsInvalidBody is reported when the request body cannot be decoded or
// misses a required field.
const DetailsInvalidBody = "Invalid request body"

// DetailsBodyTooLarge is reported when the request body exceeds the size limit.
const DetailsBodyTooLarge = "Request body too large"

// DefaultMaxBodyBytes caps the request body when no limit is configured.
const DefaultMaxBodyBytes int64 = 10 << 20

// Handler holds the HTTP handler for the upload endpoint.
type Handler struct {
	svc             *Service
	identifierField string
	defaultAuthor   string
	maxBodyBytes    int64
}

// NewHandler creates a new upload Handler. identifierField selects the JSON
// field carrying the identifier: config.IdentifierCPE or config.IdentifierFolder.
// A non-positive maxBodyBytes uses DefaultMaxBodyBytes.
func NewHandler(svc *Service, identifierField, defaultAuthor string, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		svc:             svc,
		identifierField: identifierField,
		defaultAuthor:   defaultAuthor,
		maxBodyBytes:    maxBodyBytes,
	}
}

type uploadConfigRequest struct {
	CpeID       *string `json:"cpe_id,omitempty" example:"device1"`
	Folder      *string `json:"folder,omitempty" example:"site-a"`
	Filename    *string `json:"filename"         example:"config.txt"`
	FileContent *string `json:"filecontent"      example:"aGVsbG8="`
}

// UploadConfig godoc
//
//	@Summary		Upload a config file
//	@Description	Accepts a base64-encoded string and uploads it as a file to the storage. The identifier ("cpe_id" or "folder", depending on the deployment) and "filename" build the object path; "filecontent" holds the base64-encoded file. Validation failures are reported with HTTP 200 and an embedded 4xx result code.
//	@Tags			Configuration Files
//	@Accept			json
//	@Produce		json
//	@Param			request	body		uploadConfigRequest	true	"File to upload"
//	@Success		200		{object}	response.Envelope
//	@Failure		413		{object}	response.Envelope
//	@Failure		422		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/method/UploadConfig [post]
func (h *Handler) UploadConfig(w http.ResponseWriter, r *http.Request) {
	author := middleware.AuthorFrom(r.Context(), h.defaultAuthor)
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var body uploadConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			slog.Warn("request body too large", "limit", tooLarge.Limit, "author", author)
			response.Write(w, http.StatusRequestEntityTooLarge, response.TooLarge(DetailsBodyTooLarge))
			return
		}
		slog.Warn("decode upload request", "author", author, "error", err)
		response.Write(w, http.StatusUnprocessableEntity, response.Unprocessable(DetailsInvalidBody))
		return
	}

	identifier := body.CpeID
	if h.identifierField == config.IdentifierFolder {
		identifier = body.Folder
	}
	if identifier == nil || body.Filename == nil || body.FileContent == nil {
		slog.Warn("upload request misses a required field",
			"identifier_field", h.identifierField,
			"has_identifier", identifier != nil,
			"has_filename", body.Filename != nil,
			"has_filecontent", body.FileContent != nil,
			"author", author,
		)
		response.Write(w, http.StatusUnprocessableEntity, response.Unprocessable(DetailsInvalidBody))
		return
	}

	result := h.svc.Upload(r.Context(), Request{
		Identifier:  *identifier,
		Filename:    *body.Filename,
		FileContent: *body.FileContent,
		Author:      author,
	})
	response.Write(w, result.Status, result.Body)
}
