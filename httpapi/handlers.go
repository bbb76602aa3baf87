// Package httpapi: route handlers over the session.

package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/session"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/validate"
)

const (
	// uploadField is the multipart form field carrying the file.
	uploadField = "file"

	// filenameHeader names a raw-body upload.
	filenameHeader = "X-Filename"

	// defaultUploadName stands in when a raw-body upload has no name.
	defaultUploadName = "upload.mtx"
)

// Summary is the JSON block the upload page renders: identity, shape,
// and the validation verdict of the current network.
type Summary struct {
	Name       string   `json:"name"`
	Digest     string   `json:"digest"`
	Nodes      int      `json:"nodes"`
	Edges      int      `json:"edges"`
	Density    float64  `json:"density"`
	Components int      `json:"components"`
	Connected  bool     `json:"connected"`
	Symmetric  bool     `json:"symmetric"`
	SelfLoops  int      `json:"self_loops"`
	Warnings   []string `json:"warnings"`
}

// summarize flattens the session triple into the wire shape. Warnings is
// always an array, never null.
func summarize(up session.Upload, rep *validate.Report, stats validate.Stats) Summary {
	if rep == nil {
		rep = &validate.Report{}
	}
	warnings := make([]string, 0, len(rep.Warnings))
	for _, w := range rep.Warnings {
		warnings = append(warnings, w.String())
	}

	return Summary{
		Name:       up.Name,
		Digest:     string(up.Digest),
		Nodes:      stats.Nodes,
		Edges:      stats.Edges,
		Density:    stats.Density,
		Components: stats.Components,
		Connected:  rep.Connected,
		Symmetric:  rep.Symmetric,
		SelfLoops:  rep.SelfLoops,
		Warnings:   warnings,
	}
}

// readUpload extracts the file from either accepted shape: a multipart
// form with field "file", or a raw body named by X-Filename. The body is
// hard-capped before any parsing so an oversized request surfaces as
// *http.MaxBytesError rather than an allocation.
func (s *Server) readUpload(c *gin.Context) (string, []byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.maxBytes)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile(uploadField)
		if err != nil {
			return "", nil, err
		}
		f, err := fh.Open()
		if err != nil {
			return "", nil, err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return "", nil, err
		}

		return fh.Filename, data, nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", nil, err
	}
	name := c.GetHeader(filenameHeader)
	if name == "" {
		name = defaultUploadName
	}

	return name, data, nil
}

// handleUpload ingests one file and answers with the summary block.
//
// Malformed coordinate text is the caller's fault: 400 with the parser's
// single line-and-reason message, nothing else. Oversize bodies are 413.
// Anything past that is ours and answers 500.
func (s *Server) handleUpload(c *gin.Context) {
	name, data, err := s.readUpload(c)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge,
				gin.H{"error": fmt.Sprintf("upload exceeds %d bytes", s.opts.maxBytes)})

			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload body"})

		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty upload"})

		return
	}

	res, err := s.sess.Load(c.Request.Context(), name, data)
	if err != nil {
		var pe *mtx.ParseError
		if errors.As(err, &pe) {
			s.metrics.parseFailuresTotal.Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": pe.Error()})

			return
		}
		s.log.Error("upload failed", "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load network"})

		return
	}

	s.metrics.recordUpload(len(data))
	c.JSON(http.StatusCreated, summarize(res.Upload, res.Report, res.Stats))
}

// handleCurrent answers the summary of the loaded network, or 404 when
// the slot is empty.
func (s *Server) handleCurrent(c *gin.Context) {
	up, ok := s.sess.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no network loaded"})

		return
	}
	stats, _ := s.sess.Stats()
	c.JSON(http.StatusOK, summarize(up, s.sess.Report(), stats))
}

// handlePayload streams the opaque serialized payload back to the caller.
func (s *Server) handlePayload(c *gin.Context) {
	payload, err := s.sess.Payload(c.Request.Context())
	if err != nil {
		if errors.Is(err, session.ErrEmpty) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no network loaded"})

			return
		}
		s.log.Error("payload fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch payload"})

		return
	}

	up, _ := s.sess.Current()
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", up.Digest.Short()+".sna"))
	c.Data(http.StatusOK, "application/octet-stream", payload)
}

// handleRestore rebuilds the session from its persisted payload.
//
// An unusable payload already cleared the slot by the time the error
// reaches us; 410 tells the caller the resource is gone for good and a
// fresh upload is the only way forward.
func (s *Server) handleRestore(c *gin.Context) {
	res, err := s.sess.Restore(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmpty):
			c.JSON(http.StatusNotFound, gin.H{"error": "no network loaded"})
		case errors.Is(err, session.ErrRestore):
			s.metrics.restoreFailuresTotal.Inc()
			c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		default:
			s.log.Error("restore failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not restore network"})
		}

		return
	}

	c.JSON(http.StatusOK, summarize(res.Upload, res.Report, res.Stats))
}

// handleClear empties the slot. Clearing an empty slot is still a 204.
func (s *Server) handleClear(c *gin.Context) {
	if err := s.sess.Clear(c.Request.Context()); err != nil {
		s.log.Error("clear failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear network"})

		return
	}
	c.Status(http.StatusNoContent)
}

// handleHealthz is the liveness probe.
func handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
