package notify

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// Route is where the notification boundary is mounted.
const Route = "/api/send-notification"

// Handler serves POST Route. An undecodable body is reported as an internal
// failure, matching the boundary's three error kinds.
func Handler(svc model.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.NotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logx.Error().Err(err).Msg("error decoding notification request")
			c.JSON(http.StatusInternalServerError, model.NotificationResponse{Error: errx.NotificationFailMessage})
			return
		}

		resp, err := svc.Notify(c.Request.Context(), req)
		if err != nil {
			c.JSON(errx.StatusOf(err), model.NotificationResponse{Error: notificationError(err)})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func notificationError(err error) string {
	if errx.StatusOf(err) >= http.StatusInternalServerError {
		return errx.NotificationFailMessage
	}
	return errx.MessageOf(err)
}
