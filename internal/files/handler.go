package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/KromaEnergia/api-contracts/internal/contract"
	"github.com/KromaEnergia/api-contracts/internal/storage"
	"github.com/KromaEnergia/api-contracts/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	tagStatus   = "status"
	tagLinked   = "linked"
	tagUnlinked = "unlinked"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Contracts  contract.Repository
	Store      storage.ObjectStore
}

func NewHandler(db *gorm.DB, store storage.ObjectStore) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Contracts:  contract.NewRepository(),
		Store:      store,
	}
}

// POST /files/upload
// Uploaded objects land under uploads/ tagged as unlinked. Unlinked objects
// are temporary and swept by the store's lifecycle rule.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	ext := path.Ext(header.Filename)
	filename := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	key := path.Join("uploads", filename)
	err = h.Store.Upload(r.Context(), key, file, header.Size,
		header.Header.Get("Content-Type"), map[string]string{tagStatus: tagUnlinked})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "The object store responded with an error")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Created{Path: key})
}

// POST /files/link_to_contract
// Two-phase: the object is moved and retagged first, then the database rows
// are written. A database failure after the move strands the object as
// linked-but-unrecorded; there is no compensating rollback.
func (h *Handler) LinkToContract(w http.ResponseWriter, r *http.Request) {
	var in LinkInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Filepath == "" || in.ContractID == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	c, err := h.Contracts.FindByID(h.DB, in.ContractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Contract not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not load contract")
		return
	}
	if c.Path != "" {
		utils.RespondError(w, http.StatusBadRequest, "Contract is linked to another file")
		return
	}
	if _, err := h.Repository.FindByPath(h.DB, in.Filepath); err == nil {
		utils.RespondError(w, http.StatusBadRequest, "File has already been linked")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusInternalServerError, "Could not verify file")
		return
	}

	filename := path.Base(in.Filepath)
	newPath := path.Join(fmt.Sprintf("%d", in.ContractID), filename)
	if err := h.Store.Move(r.Context(), in.Filepath, newPath); err != nil {
		if storage.IsNotExist(err) {
			utils.RespondError(w, http.StatusBadRequest, "File does not exist")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "The object store responded with an error")
		return
	}
	// mark the file as linked so it does not get swept
	if err := h.Store.SetTags(r.Context(), newPath, map[string]string{tagStatus: tagLinked}); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "The object store responded with an error")
		return
	}

	size, err := h.Store.Stat(r.Context(), newPath)
	if err != nil {
		slog.Warn("could not stat linked object", "path", newPath, "error", err)
	}
	record := File{ContractID: c.ID, Path: newPath, Filename: filename, Size: size}
	if err := h.Repository.Create(h.DB, &record); err != nil {
		slog.Error("file moved in object store but link record failed", "path", newPath, "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "Could not record file link")
		return
	}
	c.Path = newPath
	if err := h.Contracts.Save(h.DB, c); err != nil {
		slog.Error("file moved in object store but contract update failed", "path", newPath, "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "Could not update contract")
		return
	}
	utils.SuccessOK(w)
}

// POST /files/unlink
func (h *Handler) Unlink(w http.ResponseWriter, r *http.Request) {
	var in UnlinkInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Filepath == "" {
		utils.RespondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	file, err := h.Repository.FindByPath(h.DB, in.Filepath)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusBadRequest, "File not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not load file")
		return
	}
	c, err := h.Contracts.FindByID(h.DB, file.ContractID)
	switch {
	case err == nil:
		c.Path = ""
		if err := h.Contracts.Save(h.DB, c); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Could not update contract")
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// contract already gone, still release the object and the row
	default:
		utils.RespondError(w, http.StatusInternalServerError, "Could not load contract")
		return
	}
	if err := h.Store.SetTags(r.Context(), in.Filepath, map[string]string{tagStatus: tagUnlinked}); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "The object store responded with an error")
		return
	}
	if err := h.Repository.Delete(h.DB, file.ID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not remove file record")
		return
	}
	utils.SuccessOK(w)
}
