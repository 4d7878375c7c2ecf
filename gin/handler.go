package gin

import (
	"errors"
	"net/http"

	"github.com/fwojciec/distill"
	"github.com/gin-gonic/gin"
)

// BaseURLHeader carries the origin an email's relative URLs resolve against.
const BaseURLHeader = "X-Base-Url"

// testRunRequest is the body of the test_run endpoint.
type testRunRequest struct {
	HTML string `json:"html"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.String(http.StatusOK, "distill")
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleEmailReadability distills the HTML body of a parsed email.
func (s *Server) handleEmailReadability(c *gin.Context) {
	baseURL := c.GetHeader(BaseURLHeader)
	if baseURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": BaseURLHeader + " header is required"})
		return
	}
	if _, err := distill.ValidateBaseURL(baseURL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": distill.ErrorMessage(err)})
		return
	}

	var email distill.Email
	if err := c.ShouldBindJSON(&email); err != nil {
		s.bindError(c, err)
		return
	}

	result := s.distiller.Distill(distill.MessageURL(baseURL, email.MessageID), email.Body())
	c.JSON(http.StatusOK, result)
}

// handleTestRun distills raw HTML as if it were an email without a message id.
func (s *Server) handleTestRun(c *gin.Context) {
	var req testRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, err)
		return
	}

	result := s.distiller.Distill(distill.MessageURL(s.emailBaseURL, ""), req.HTML)
	c.JSON(http.StatusOK, result)
}

func (s *Server) bindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
		return
	}
	s.logger.Debug("invalid request body", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
}
