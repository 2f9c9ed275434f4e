package httpserver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/deathline/internal/common"
	"github.com/gin-gonic/gin"
)

// param reads a request parameter from the query string or, failing that,
// from a urlencoded/multipart form body.
func param(c *gin.Context, name string) (string, bool) {
	if v, ok := c.GetQuery(name); ok {
		return v, true
	}
	return c.GetPostForm(name)
}

func requiredInt64(c *gin.Context, name string) (int64, error) {
	v, ok := param(c, name)
	if !ok || v == "" {
		return 0, fmt.Errorf("%w: missing parameter %q", common.ErrValidation, name)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parameter %q must be an integer", common.ErrValidation, name)
	}
	return n, nil
}

func optionalTime(c *gin.Context, name string) (*time.Time, error) {
	v, ok := param(c, name)
	if !ok || v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%w: parameter %q must be an RFC 3339 timestamp", common.ErrValidation, name)
	}
	return &t, nil
}

// requiredDeadline decodes the JSON-encoded "deadline" parameter. The due
// instant is mandatory.
func requiredDeadline(c *gin.Context) (*deadlineDTO, error) {
	v, ok := param(c, "deadline")
	if !ok || v == "" {
		return nil, fmt.Errorf("%w: missing parameter %q", common.ErrValidation, "deadline")
	}

	var d deadlineDTO
	if err := json.Unmarshal([]byte(v), &d); err != nil {
		return nil, fmt.Errorf("%w: parameter %q is not a valid deadline", common.ErrValidation, "deadline")
	}
	if d.Due == nil {
		return nil, fmt.Errorf("%w: deadline due instant is required", common.ErrValidation)
	}
	return &d, nil
}
