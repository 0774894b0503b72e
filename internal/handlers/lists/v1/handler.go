// Package v1 serves the army list HTTP API used by the tabletop mod.
package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/orchestrators/armylist"
)

const maxBodyBytes = 1 << 20

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ArmyListService armylist.Service
	Logger          *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ArmyListService == nil {
		vb.RequiredField("ArmyListService")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}

	return vb.Build()
}

// Handler implements the lists API
type Handler struct {
	armyListService armylist.Service
	logger          *zap.Logger
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		armyListService: cfg.ArmyListService,
		logger:          cfg.Logger,
	}, nil
}

// ConvertRequest asks for a list to be converted
type ConvertRequest struct {
	ShareLink    string                 `json:"shareLink"`
	ArmyID       string                 `json:"armyId"`
	Beta         bool                   `json:"beta"`
	OutputConfig *entities.OutputConfig `json:"outputConfig,omitempty"`
	Loadout      []armylist.LoadoutEdit `json:"loadout,omitempty"`
	Copies       []armylist.ModelCopies `json:"copies,omitempty"`
	Save         bool                   `json:"save"`
}

// ConvertResponse carries the converted list and its id when saved
type ConvertResponse struct {
	ListID string                    `json:"listId,omitempty"`
	List   *entities.ShareableOutput `json:"list"`
}

// SaveListRequest carries a shareable output to store
type SaveListRequest struct {
	ListJSON *entities.ShareableOutput `json:"list_json"`
}

// SaveListResponse acknowledges a stored list
type SaveListResponse struct {
	Message string `json:"message"`
	ListID  string `json:"listId"`
}

// ErrorBody is the error envelope
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Convert imports a list from Army Forge and returns the shareable output
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.ShareLink == "" && req.ArmyID == "" {
		h.writeError(w, r, errors.InvalidArgument("shareLink or armyId is required"))
		return
	}

	out, err := h.armyListService.Convert(r.Context(), &armylist.ConvertInput{
		ShareLink:    req.ShareLink,
		ArmyID:       req.ArmyID,
		Beta:         req.Beta,
		OutputConfig: req.OutputConfig,
		Loadout:      req.Loadout,
		Copies:       req.Copies,
		Save:         req.Save,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := ConvertResponse{List: out.Output}
	if out.SharedList != nil {
		resp.ListID = out.SharedList.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

// SaveList stores a shareable output built elsewhere
func (h *Handler) SaveList(w http.ResponseWriter, r *http.Request) {
	var req SaveListRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.ListJSON == nil {
		h.writeError(w, r, errors.InvalidArgument("Must supply `list_json`"))
		return
	}

	out, err := h.armyListService.SaveShareableOutput(r.Context(), &armylist.SaveShareableOutputInput{
		Output: req.ListJSON,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SaveListResponse{
		Message: "List saved",
		ListID:  out.SharedList.ID,
	})
}

// GetList returns a stored list. The id comes from the path or, for older
// mod versions, the listId query parameter.
func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")
	if listID == "" {
		listID = r.URL.Query().Get("listId")
	}
	if listID == "" {
		h.writeError(w, r, errors.InvalidArgument("Must supply `listId`"))
		return
	}

	out, err := h.armyListService.GetSharedList(r.Context(), &armylist.GetSharedListInput{ListID: listID})
	if err != nil {
		if errors.IsNotFound(err) {
			err = errors.NotFound("List not found").WithMeta("list_id", listID)
		}
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.SharedList)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	body := ErrorBody{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	}
	if code == errors.CodeInternal {
		h.logger.Error("internal error",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		body.Message = "internal error"
		body.Meta = nil
	}

	writeJSON(w, code.HTTPStatus(), struct {
		Error ErrorBody `json:"error"`
	}{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
