// Package server exposes the upload endpoint: a multipart file upload plus
// Firefly credentials in, a converted-and-forwarded import out. Temporary
// files live only for the duration of one exchange.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"ledgerbridge/statement-csv/internal/fileutils"
	"ledgerbridge/statement-csv/internal/forwarder"
	"ledgerbridge/statement-csv/internal/i18n"
	"ledgerbridge/statement-csv/internal/logging"
	"ledgerbridge/statement-csv/internal/processor"

	"github.com/google/uuid"
)

// maxUploadBytes bounds the multipart form memory and the accepted file
// size. Statement exports are small; anything larger is not one.
const maxUploadBytes = 32 << 20

// Server handles upload requests.
type Server struct {
	uploadDir string
	language  string
	forwarder *forwarder.Forwarder
	logger    logging.Logger
}

// New creates a Server writing temp files under uploadDir.
func New(uploadDir, language string, fw *forwarder.Forwarder, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if fw == nil {
		fw = forwarder.New(nil, logger)
	}
	return &Server{
		uploadDir: uploadDir,
		language:  language,
		forwarder: fw,
		logger:    logger,
	}
}

// Handler returns the HTTP handler for the upload API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/upload", s.handleUpload)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// ListenAndServe runs the server on the given port until the listener
// fails.
func (s *Server) ListenAndServe(port int) error {
	if err := fileutils.EnsureDirectoryExists(s.uploadDir); err != nil {
		return err
	}
	addr := fmt.Sprintf(":%d", port)
	s.logger.Info("Upload server listening", logging.Field{Key: "addr", Value: addr})
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

type uploadResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Dialect string          `json:"processorType,omitempty"`
	Firefly json.RawMessage `json:"firefly,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload accepts a multipart upload with the source export plus the
// Firefly credentials, converts it and forwards the result. Both temp
// files are deleted whether the exchange succeeds or fails.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, uploadResponse{
			Success: false, Message: "method not allowed",
		})
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, uploadResponse{
			Success: false, Message: "invalid multipart form",
		})
		return
	}

	token := r.FormValue("token")
	fireflyURL := r.FormValue("fireflyUrl")
	secret := r.FormValue("secret")
	if token == "" || fireflyURL == "" || secret == "" {
		writeJSON(w, http.StatusBadRequest, uploadResponse{
			Success: false, Message: "Missing Firefly token, URL, or secret",
		})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, uploadResponse{
			Success: false, Message: "No file uploaded",
		})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	inputPath, err := s.saveUpload(file)
	if err != nil {
		s.logger.WithError(err).Error("Failed to store upload")
		writeJSON(w, http.StatusInternalServerError, uploadResponse{
			Success: false, Message: "failed to store upload",
		})
		return
	}
	outputPath := inputPath + ".out.csv"
	defer func() {
		fileutils.RemoveQuietly(inputPath)
		fileutils.RemoveQuietly(outputPath)
	}()

	// The form may pin a dialect; otherwise detection decides. Dispatch
	// itself never detects.
	dialect := processor.Type(r.FormValue("processor"))
	if dialect == "" {
		dialect, err = processor.DetectFile(inputPath)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, uploadResponse{
				Success: false, Message: err.Error(),
			})
			return
		}
	}

	if lang := r.FormValue("language"); lang != "" {
		i18n.SetLanguage(lang)
	} else if s.language != "" {
		i18n.SetLanguage(s.language)
	}

	if err := processor.ConvertFileWithLogger(inputPath, outputPath, dialect, s.logger, nil); err != nil {
		s.logger.WithError(err).Error("Conversion failed")
		writeJSON(w, http.StatusInternalServerError, uploadResponse{
			Success: false, Message: err.Error(), Dialect: string(dialect),
		})
		return
	}

	result, err := s.forwarder.Forward(r.Context(), forwarder.Request{
		FilePath: outputPath,
		Dialect:  dialect,
		BaseURL:  fireflyURL,
		Token:    token,
		Secret:   secret,
	})
	if err != nil {
		s.logger.WithError(err).Error("Forwarding to importer failed")
		message := err.Error()
		if result != nil && result.RawBody != "" {
			message = result.RawBody
		}
		writeJSON(w, http.StatusInternalServerError, uploadResponse{
			Success: false, Message: message, Dialect: string(dialect),
		})
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Success: true,
		Dialect: string(dialect),
		Firefly: result.Body,
	})
}

// saveUpload copies the uploaded stream to a uniquely named temp file
// under the upload directory.
func (s *Server) saveUpload(file io.Reader) (string, error) {
	if err := fileutils.EnsureDirectoryExists(s.uploadDir); err != nil {
		return "", err
	}

	inputPath := filepath.Join(s.uploadDir, uuid.New().String())
	out, err := os.Create(inputPath) // #nosec G304 -- path built from a fresh UUID
	if err != nil {
		return "", fmt.Errorf("error creating upload file: %w", err)
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, io.LimitReader(file, maxUploadBytes)); err != nil {
		fileutils.RemoveQuietly(inputPath)
		return "", fmt.Errorf("error writing upload file: %w", err)
	}
	return inputPath, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
