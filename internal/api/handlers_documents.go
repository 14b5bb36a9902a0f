package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/clausebeacon/internal/parser"
	"github.com/dgallion1/clausebeacon/internal/session"
)

// handleUpload accepts a document either as a multipart file or as a JSON
// body carrying a data URI, extracts its text, and opens a session for it.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	var (
		filename string
		mimeType string
		data     []byte
	)

	switch {
	case strings.HasPrefix(r.Header.Get("Content-Type"), "application/json"):
		var body struct {
			Filename string `json:"filename"`
			DataURI  string `json:"data_uri"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
			return
		}
		var err error
		mimeType, data, err = parseDataURI(body.DataURI)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		filename = sanitizeFilename(body.Filename)

	default:
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		filename = sanitizeFilename(header.Filename)
		mimeType = header.Header.Get("Content-Type")
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = parser.MimeForFilename(filename)
		}

		data, err = io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
		if err != nil {
			jsonError(w, "failed to read file", http.StatusInternalServerError)
			return
		}
	}

	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}
	if !parser.IsSupported(mimeType) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", mimeType), http.StatusUnsupportedMediaType)
		return
	}

	text, err := s.svc.ExtractText(r.Context(), mimeType, data)
	if err != nil {
		s.log.Error("extraction failed", "filename", filename, "mime_type", mimeType, "error", err)
		jsonError(w, "failed to extract text from the document: "+err.Error(), statusForError(err))
		return
	}

	sess := s.sessions.Create()
	sess.SetDocument(session.Document{
		Filename:      filename,
		MimeType:      mimeType,
		ExtractedText: text,
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id":     sess.ID(),
		"filename":       filename,
		"mime_type":      mimeType,
		"extracted_text": text,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	s.sessions.Delete(sess.ID())
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// parseDataURI splits a data:<mime>;base64,<data> URI into its parts.
func parseDataURI(uri string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("data_uri must start with data:")
	}
	rest := uri[len("data:"):]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return "", nil, fmt.Errorf("malformed data uri")
	}
	meta, payload := rest[:comma], rest[comma+1:]
	mimeType = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data uri: %w", err)
	}
	return mimeType, data, nil
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
