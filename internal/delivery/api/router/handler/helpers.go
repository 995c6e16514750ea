package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID reads a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidArgument.WithDetails("invalid " + name + " " + strconv.Quote(raw))
	}

	return id, nil
}

func pathChannel(c echo.Context) (entity.Channel, error) {
	channel, err := entity.ParseChannel(c.Param("channel"))
	if err != nil {
		return "", domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	return channel, nil
}

// ChannelValueRequest carries one channel's value. The value may be sent as
// a JSON string holding the operator's text, or inline as JSON.
type ChannelValueRequest struct {
	Value json.RawMessage `json:"value"`
}

// Text returns what the operator typed. Validation happens downstream, so
// anything that is not a JSON string is passed on as-is.
func (r ChannelValueRequest) Text() string {
	trimmed := strings.TrimSpace(string(r.Value))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(r.Value, &s); err == nil {
			return s
		}
	}

	return trimmed
}
