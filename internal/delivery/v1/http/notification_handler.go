package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-view/internal/infrastructure/notify"
)

// NotificationFeed отдаёт накопленные уведомления
type NotificationFeed interface {
	Drain() []notify.Toast
}

type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// drain
//
//	@Summary		Уведомления
//	@Description	Возвращает уведомления в порядке появления и очищает очередь
//	@Tags			notifications
//	@Produce		json
//	@Success		200	{array}	NotificationResponse
//	@Router			/notifications [get]
func (h *NotificationHandler) drain(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toNotificationsResponse(h.feed.Drain()))
}
