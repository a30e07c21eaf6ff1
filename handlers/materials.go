// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/campus-hub/cliparse"
	"github.com/danielhkuo/campus-hub/filestore"
	"github.com/danielhkuo/campus-hub/middleware"
	"github.com/danielhkuo/campus-hub/models"
)

const materialsPath = "/materials"

// maxUploadMemory bounds the in-memory part of multipart parsing;
// larger files spill to temp files
const maxUploadMemory = 32 << 20

type MaterialHandler struct {
	db    *sql.DB
	store *filestore.Store
	cfg   cliparse.Config
}

func NewMaterialHandler(db *sql.DB, store *filestore.Store, cfg cliparse.Config) *MaterialHandler {
	return &MaterialHandler{db: db, store: store, cfg: cfg}
}

// List handles GET /materials
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := listMaterials(h.db, 0)
	if err != nil {
		slog.Error("failed to query materials", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MaterialListResponse{
		Message:   middleware.PopFlash(w, r),
		Materials: materials,
	})
}

// Create handles POST /materials (multipart upload)
func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		middleware.FlashRedirect(w, r, materialsPath, "Title and file are required.")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))
	uploadedBy := strings.TrimSpace(r.FormValue("uploaded_by"))

	file, header, err := r.FormFile("file")
	if err != nil || title == "" || header.Filename == "" {
		if err == nil {
			file.Close()
		}
		middleware.FlashRedirect(w, r, materialsPath, "Title and file are required.")
		return
	}
	defer file.Close()

	// Check the name the file will actually be stored under;
	// sanitization can eat the base and leave a bare extension
	if !filestore.Allowed(filestore.Sanitize(header.Filename)) {
		middleware.FlashRedirect(w, r, materialsPath, "File type not allowed.")
		return
	}

	// Persist the file first, then the record
	stored, size, err := h.store.Save(file, header.Filename)
	if err != nil {
		slog.Error("failed to store upload", "error", err, "filename", header.Filename)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save file")
		return
	}

	materialID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO study_material (id, title, description, filename, file_size, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, materialID, title, description, stored, size, uploadedBy, time.Now())

	if err != nil {
		// don't keep a file no record points at
		os.Remove(filepath.Join(h.store.Dir(), stored))
		slog.Error("failed to insert material", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save material")
		return
	}

	slog.Info("material uploaded",
		"material_id", materialID,
		"filename", stored,
		"size", humanize.Bytes(uint64(size)),
	)

	middleware.FlashRedirect(w, r, materialsPath, "Material uploaded successfully.")
}

// Serve handles GET /uploads/{filename}
func (h *MaterialHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")

	path, err := h.store.Path(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, path)
}

// listMaterials returns materials newest first, limited to n when n > 0
func listMaterials(db *sql.DB, n int) ([]models.StudyMaterial, error) {
	query := `
		SELECT id, title, description, filename, file_size, uploaded_by, created_at
		FROM study_material
		ORDER BY created_at DESC
	`

	var rows *sql.Rows
	var err error
	if n > 0 {
		rows, err = db.Query(query+" LIMIT $1", n)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	materials := []models.StudyMaterial{}
	for rows.Next() {
		var m models.StudyMaterial
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Filename,
			&m.FileSize, &m.UploadedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.SizeHuman = humanize.Bytes(uint64(m.FileSize))
		m.UploadedAgo = humanize.Time(m.CreatedAt)
		materials = append(materials, m)
	}

	return materials, rows.Err()
}
