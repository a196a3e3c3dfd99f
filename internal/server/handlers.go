package server

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dersesut/equipimport/internal/store"
	"github.com/dersesut/equipimport/pkg/ingest"
	"github.com/dersesut/equipimport/pkg/ingest/export"
	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// multipartSlack leaves room for multipart framing around the file itself.
const multipartSlack = 1 << 20

type importResponse struct {
	models.EquipmentData
	Imported    store.Counts         `json:"imported"`
	Persisted   bool                 `json:"persisted"`
	Diagnostics []models.Diagnostic  `json:"diagnostics,omitempty"`
	Sheets      []models.SheetReport `json:"sheets,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleImport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxUploadBytes+multipartSlack)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file_too_large"})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unsupported_file"})
		return
	}
	if header.Size > s.opts.MaxUploadBytes {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file_too_large"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "file_unreadable"})
		return
	}

	diagnostics := queryBool(c, "diagnostics", false)
	opts := ingest.Options{
		Shape:              s.opts.Shape,
		IncludeDiagnostics: &diagnostics,
		Logger:             s.log.WithField("file", header.Filename),
	}
	res, err := ingest.ParseContext(c.Request.Context(), data, opts)
	if err != nil {
		if errors.Is(err, ingest.ErrDecode) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid_workbook"})
			return
		}
		s.log.WithError(err).Error("import failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "import_failed"})
		return
	}

	resp := importResponse{
		EquipmentData: res.EquipmentData,
		Imported:      store.Counts{CPUs: len(res.CPUs), Monitors: len(res.Monitors)},
		Diagnostics:   res.Diagnostics,
		Sheets:        res.Sheets,
	}

	if s.store != nil && queryBool(c, "persist", true) {
		if _, err := s.store.SaveEquipment(c.Request.Context(), res.EquipmentData); err != nil {
			s.log.WithError(err).Error("persist failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "persist_failed"})
			return
		}
		resp.Persisted = true
	}

	s.log.WithFields(logrus.Fields{
		"file": header.Filename, "cpus": resp.Imported.CPUs, "monitors": resp.Imported.Monitors,
		"persisted": resp.Persisted,
	}).Info("workbook imported")
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleTemplate(c *gin.Context) {
	data, err := export.Template()
	if err != nil {
		s.log.WithError(err).Error("template failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "template_failed"})
		return
	}
	attachment(c, "template_importacao_equipamentos.xlsx", data)
}

func (s *Server) handleExport(c *gin.Context) {
	var data models.EquipmentData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	out, err := export.WriteWorkbook(data)
	if err != nil {
		s.log.WithError(err).Error("export failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "export_failed"})
		return
	}
	attachment(c, "equipamentos.xlsx", out)
}

func (s *Server) handleStats(c *gin.Context) {
	if s.store == nil {
		c.AbortWithStatusJSON(http.StatusNotImplemented, gin.H{"error": "store_unavailable"})
		return
	}
	st, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.log.WithError(err).Error("stats failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "stats_failed"})
		return
	}
	c.JSON(http.StatusOK, st)
}

func attachment(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func queryBool(c *gin.Context, key string, def bool) bool {
	v, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
