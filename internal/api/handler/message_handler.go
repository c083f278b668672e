package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/api/metrics"
	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// MessageStream delivers messages addressed to a user as they arrive.
// The returned cancel func must be called when the subscriber goes away.
type MessageStream interface {
	Subscribe(userID string) (<-chan *domain.Message, func())
}

// MessageHandler handles HTTP and WebSocket requests for messaging.
type MessageHandler struct {
	service ports.ThreadService
	stream  MessageStream
	logger  zerolog.Logger

	upgrader websocket.Upgrader
}

func NewMessageHandler(service ports.ThreadService, stream MessageStream, logger zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		stream:  stream,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The token already authenticates the caller; origin checks
			// would only break non-browser clients.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Resolve handles POST /v1/mensajes/thread.
//
// @Summary      Find or create the thread with another user
// @Tags         mensajes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      resolveThreadRequest  true  "Thread counterpart"
// @Success      200   {object}  threadResponse
// @Success      201   {object}  threadResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/mensajes/thread [post]
func (h *MessageHandler) Resolve(c echo.Context) error {
	var req resolveThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.Resolve(c.Request().Context(), ports.ResolveThreadInput{
		UserID:    userID,
		OtherID:   req.ReceptorID,
		ListingID: req.PropiedadID,
	})
	if err != nil {
		return err
	}

	resp := threadResponse{ThreadID: result.ThreadID, Created: result.Created}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
		metrics.MessagesSentTotal.WithLabelValues("seed").Inc()
	}
	if result.Seed != nil {
		seed := toMessageResponse(result.Seed)
		resp.Seed = &seed
	}
	return c.JSON(status, resp)
}

// History handles GET /v1/mensajes.
//
// @Summary      Get the message history with another user
// @Tags         mensajes
// @Produce      json
// @Security     BearerAuth
// @Param        otro_id       query     string  true   "Other participant id"
// @Param        propiedad_id  query     string  false  "Listing scope"
// @Success      200  {object}  historyResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/mensajes [get]
func (h *MessageHandler) History(c echo.Context) error {
	otherID := c.QueryParam("otro_id")
	if otherID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "otro_id query parameter is required")
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	msgs, err := h.service.History(c.Request().Context(), ports.HistoryInput{
		UserID:    userID,
		OtherID:   otherID,
		ListingID: c.QueryParam("propiedad_id"),
	})
	if err != nil {
		return err
	}

	out := historyResponse{Mensajes: make([]messageResponse, len(msgs))}
	for i, m := range msgs {
		out.Mensajes[i] = toMessageResponse(m)
	}
	return c.JSON(http.StatusOK, out)
}

// Send handles POST /v1/mensajes.
//
// @Summary      Send a message
// @Tags         mensajes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/mensajes [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	msg, err := h.service.Send(c.Request().Context(), ports.SendMessageInput{
		SenderID:    userID,
		RecipientID: req.ReceptorID,
		ListingID:   req.PropiedadID,
		Body:        req.Contenido,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.WithLabelValues("reply").Inc()
	return c.JSON(http.StatusCreated, toMessageResponse(msg))
}

// Stream handles GET /v1/mensajes/stream.
// Upgrades to a WebSocket and pushes every message addressed to the
// caller as a JSON frame until the client disconnects.
func (h *MessageHandler) Stream(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}
	defer conn.Close()

	ch, cancel := h.stream.Subscribe(userID)
	defer cancel()

	metrics.RealtimeSubscribers.Inc()
	defer metrics.RealtimeSubscribers.Dec()

	// Reader goroutine: we never expect frames from the client, but
	// reading is what surfaces the close handshake.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case <-c.Request().Context().Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(toMessageResponse(msg)); err != nil {
				h.logger.Debug().Err(err).Str("user_id", userID).Msg("realtime write failed")
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}
