package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/deathline/internal/common"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	s.logger.Info(c.Request.Context(), "Registration request", "email", req.Email)

	result, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(result))
}

func (s *HTTPServer) login(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	result, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(result))
}

func (s *HTTPServer) getDeadlinesForUser(c *gin.Context) {
	userID, err := requiredInt64(c, "userId")
	if err != nil {
		s.writeError(c, err)
		return
	}
	from, err := optionalTime(c, "from")
	if err != nil {
		s.writeError(c, err)
		return
	}
	to, err := optionalTime(c, "to")
	if err != nil {
		s.writeError(c, err)
		return
	}

	items, err := s.deadlines.ListForUser(c.Request.Context(), userID, from, to)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDeadlineDTOs(items))
}

func (s *HTTPServer) createDeadlineForUser(c *gin.Context) {
	userID, err := requiredInt64(c, "userId")
	if err != nil {
		s.writeError(c, err)
		return
	}
	in, err := requiredDeadline(c)
	if err != nil {
		s.writeError(c, err)
		return
	}

	created, err := s.deadlines.CreateForUser(c.Request.Context(), userID, in.model())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDeadlineDTO(created))
}

func (s *HTTPServer) deleteDeadlineForUser(c *gin.Context) {
	id, err := requiredInt64(c, "deadlineId")
	if err != nil {
		s.writeError(c, err)
		return
	}

	if err := s.deadlines.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// updateDeadlineForUser accepts and validates the request but does not
// modify anything.
func (s *HTTPServer) updateDeadlineForUser(c *gin.Context) {
	d, err := requiredDeadline(c)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Warn(c.Request.Context(), "update_deadline_for_user is not wired, request ignored", "deadline_id", d.ID)
	c.Status(http.StatusOK)
}

func (s *HTTPServer) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, common.ErrAuth):
		c.String(http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(c.Request.Context(), err.Error(), "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
	}
}
