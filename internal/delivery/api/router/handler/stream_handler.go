package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 64 << 10
)

// ViewFeed delivers every rendered view to a subscriber.
type ViewFeed interface {
	Subscribe() (views <-chan *entity.ViewState, cancel func())
}

// streamMessage is one server-to-surface frame.
type streamMessage struct {
	Type  string            `json:"type"`
	View  *entity.ViewState `json:"view,omitempty"`
	Error *streamError      `json:"error,omitempty"`
}

type streamError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StreamHandler pushes views over a WebSocket and reads intents from it.
type StreamHandler struct {
	feed       ViewFeed
	dispatcher usecase.DispatcherUsecase
	logger     *slog.Logger
	upgrader   websocket.Upgrader
}

// NewStreamHandler is the constructor for StreamHandler, injected by Fx.
func NewStreamHandler(feed ViewFeed, dispatcher usecase.DispatcherUsecase, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		feed:       feed,
		dispatcher: dispatcher,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The bridge serves a local rendering surface.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Stream upgrades the connection. The surface first receives the latest
// view, then every subsequent render; intents it sends are dispatched in
// order.
func (h *StreamHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade stream")
	}
	defer conn.Close()

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Info("Surface connected", slog.String("remote_ip", c.RealIP()))

	views, cancel := h.feed.Subscribe()
	defer cancel()

	rejects := make(chan streamError, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.readIntents(ctx, conn, rejects)
	}()

	h.writeFrames(conn, views, rejects, done)
	logger.Info("Surface disconnected")

	return nil
}

// readIntents runs until the socket fails or closes.
func (h *StreamHandler) readIntents(ctx context.Context, conn *websocket.Conn, rejects chan<- streamError) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	conn.SetReadLimit(maxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var intent entity.Intent
		if err := conn.ReadJSON(&intent); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Stream read failed", slog.Any("error", err))
			}

			return
		}

		if _, err := h.dispatcher.Dispatch(ctx, intent); err != nil {
			reject := streamError{Code: domainerrors.ErrValidationFailed.ErrorCode(), Message: err.Error()}
			if appErr, ok := domainerrors.AsAppError(err); ok {
				reject = streamError{Code: appErr.ErrorCode(), Message: appErr.Message()}
			}
			select {
			case rejects <- reject:
			default:
				logger.Warn("Dropped stream rejection", slog.String("code", reject.Code))
			}
		}
	}
}

// writeFrames owns all writes to conn until the reader stops or a write fails.
func (h *StreamHandler) writeFrames(conn *websocket.Conn, views <-chan *entity.ViewState, rejects <-chan streamError, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(msg streamMessage) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

		return conn.WriteJSON(msg) == nil
	}

	for {
		select {
		case <-done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))

			return
		case view, ok := <-views:
			if !ok || !write(streamMessage{Type: "view", View: view}) {
				return
			}
		case reject := <-rejects:
			if !write(streamMessage{Type: "error", Error: &reject}) {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
