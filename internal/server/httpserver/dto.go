package httpserver

import (
	"time"

	"github.com/dmitrijs2005/deathline/internal/server/models"
	"github.com/dmitrijs2005/deathline/internal/server/services"
)

type deadlineDTO struct {
	ID          int64      `json:"deadline_id"`
	Name        *string    `json:"deadline_name"`
	Description *string    `json:"deadline_description"`
	Due         *time.Time `json:"deadline"`
}

func toDeadlineDTO(d *models.Deadline) deadlineDTO {
	due := d.Due
	return deadlineDTO{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Due:         &due,
	}
}

func toDeadlineDTOs(items []*models.Deadline) []deadlineDTO {
	out := make([]deadlineDTO, 0, len(items))
	for _, d := range items {
		out = append(out, toDeadlineDTO(d))
	}
	return out
}

func (d deadlineDTO) model() *models.Deadline {
	m := &models.Deadline{ID: d.ID, Name: d.Name, Description: d.Description}
	if d.Due != nil {
		m.Due = *d.Due
	}
	return m
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID          int64  `json:"id"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
}

func toAuthResponse(r *services.AuthResponse) authResponse {
	return authResponse{ID: r.ID, Message: r.Message, AccessToken: r.AccessToken}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errorResponse {
	return errorResponse{Error: msg}
}
