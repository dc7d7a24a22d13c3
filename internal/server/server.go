// =============================================================================
// Sales Report Generator - HTTP Boundary
// =============================================================================
//
// The HTTP layer accepts a workbook upload, hands the staged file to the
// report generator, and returns either the produced PDF or a fixed
// plain-text error message. Internal failure details are logged, never sent
// to the client.
//
// ROUTES:
//   GET  /         - upload form
//   POST /process  - multipart upload ("file" field), responds with the PDF
//
// =============================================================================

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/linkresults/report-generator/internal/config"
	"github.com/linkresults/report-generator/internal/report"
	"github.com/linkresults/report-generator/pkg/utils"
)

// Fixed client-facing messages. The processing message is deliberately
// generic: any pipeline failure maps onto it.
const (
	msgInvalidRequest = "Invalid request."
	msgNoFileSelected = "No file selected."
	msgProcessingErr  = "An error occurred. Please ensure that your spreadsheet is correctly formatted and try again."
)

const indexPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Link Results Report Generator</title>
  </head>
  <body>
    <h1>Link Results Report Generator</h1>
    <form action="/process" method="post" enctype="multipart/form-data">
      <input type="file" name="file">
      <input type="submit" value="Generate Report">
    </form>
  </body>
</html>
`

// ReportGenerator is the slice of the report pipeline the server needs.
type ReportGenerator interface {
	GenerateFile(workbookPath string) (*report.Result, error)
}

// Server serves the upload form and the report endpoint.
type Server struct {
	cfg    *config.Config
	gen    ReportGenerator
	files  *utils.FileManager
	logger *slog.Logger
}

// New wires the HTTP server. The working directories are created on first
// use via EnsureDirectories.
func New(cfg *config.Config, gen ReportGenerator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		gen:    gen,
		files:  utils.NewFileManager(cfg.UploadDir, cfg.OutputDir, cfg.PlotDir),
		logger: logger,
	}
}

// Router builds the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/process", s.handleProcess)
	return r
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.files.EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare working directories: %w", err)
	}

	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

// handleProcess accepts the multipart upload, stages it, runs the pipeline,
// and streams back the PDF. Every failure mode responds 200 with one of the
// fixed plain-text messages, matching the acceptance contract.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.logger.Warn("upload rejected", "reason", "bad multipart body", "error", err)
		writeText(w, msgInvalidRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		// A part with an empty filename (form submitted with no file chosen)
		// parses as a plain value, not a file.
		if _, present := r.MultipartForm.Value["file"]; present {
			writeText(w, msgNoFileSelected)
			return
		}
		writeText(w, msgInvalidRequest)
		return
	}
	header := headers[0]

	file, err := header.Open()
	if err != nil {
		s.logger.Warn("upload rejected", "reason", "unreadable file part", "error", err)
		writeText(w, msgInvalidRequest)
		return
	}
	defer file.Close()

	if !s.cfg.ExtensionAllowed(utils.Extension(header.Filename)) {
		s.logger.Warn("upload rejected", "reason", "extension not allowed", "filename", header.Filename)
		writeText(w, msgProcessingErr)
		return
	}

	if err := s.files.EnsureDirectories(); err != nil {
		s.logger.Error("working directories unavailable", "error", err)
		writeText(w, msgProcessingErr)
		return
	}

	staged, err := s.files.StageUpload(header.Filename, file)
	if err != nil {
		s.logger.Error("failed to stage upload", "filename", header.Filename, "error", err)
		writeText(w, msgProcessingErr)
		return
	}

	result, err := s.gen.GenerateFile(staged)
	if err != nil {
		// The client only ever sees the generic message.
		s.logger.Error("report generation failed", "workbook", staged, "error", err)
		writeText(w, msgProcessingErr)
		return
	}

	if result.DroppedTransactions > 0 {
		w.Header().Set("X-Dropped-Transactions", fmt.Sprintf("%d", result.DroppedTransactions))
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
	w.Write(result.PDF)
}

func writeText(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, msg)
}
