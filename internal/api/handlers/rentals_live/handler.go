package rentals_live

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
)

const (
	defaultWriteTimeout = 5 * time.Second
	maxReadSize         = 4 << 10
)

// Options настройки живой ленты
type Options struct {
	Tick           time.Duration
	Refresh        time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
	Clock          rentaltimer.Clock
}

// Handler живая лента аренд поверх websocket. Каждое соединение получает
// собственный драйвер таймера и собственный трекер оповещений.
type Handler struct {
	service  RentalsService
	opts     Options
	upgrader websocket.Upgrader
	logger   Logger

	baseCtx context.Context
	cancel  context.CancelFunc
}

func NewHandler(service RentalsService, opts Options, logger Logger) *Handler {
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.Clock == nil {
		opts.Clock = rentaltimer.RealClock{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &Handler{
		service: service,
		opts:    opts,
		logger:  logger,
		baseCtx: ctx,
		cancel:  cancel,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Close закрывает все открытые ленты (вызывается при остановке сервера)
func (h *Handler) Close() {
	h.cancel()
}

// Handle GET /api/v1/rentals/live
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /rentals/live - Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(h.baseCtx)
	defer cancel()

	// клиент ничего не присылает, чтение нужно только чтобы заметить закрытие
	go func() {
		defer cancel()
		conn.SetReadLimit(maxReadSize)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.logger.Info("GET /rentals/live - Client connected: %s", r.RemoteAddr)

	tracker := rentaltimer.NewAlertTracker()
	driver := rentaltimer.NewDriver(
		h.service.InProgress,
		func(_ context.Context, now time.Time, snapshots []rentaltimer.Snapshot) error {
			return h.send(conn, tracker, now, snapshots)
		},
		h.logger,
		rentaltimer.WithTick(h.opts.Tick),
		rentaltimer.WithRefresh(h.opts.Refresh),
		rentaltimer.WithClock(h.opts.Clock),
	)
	_ = driver.Run(ctx)

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(h.opts.WriteTimeout))
	h.logger.Info("GET /rentals/live - Client disconnected: %s", r.RemoteAddr)
}

func (h *Handler) send(conn *websocket.Conn, tracker *rentaltimer.AlertTracker, now time.Time, snapshots []rentaltimer.Snapshot) error {
	msg := LiveMessage{
		Type:    messageTypeTick,
		At:      now,
		Rentals: make([]LiveSnapshot, 0, len(snapshots)),
	}

	ids := make([]uuid.UUID, 0, len(snapshots))
	for _, s := range snapshots {
		ids = append(ids, s.RentalID)
		msg.Rentals = append(msg.Rentals, snapshotFromTimer(s))

		if kind, ok := rentaltimer.AlertFor(s.State); ok && tracker.ShouldFire(s.RentalID, kind) {
			msg.Alerts = append(msg.Alerts, alertFromTimer(s, kind))
		}
	}
	tracker.Retain(ids)

	_ = conn.SetWriteDeadline(time.Now().Add(h.opts.WriteTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Debug("GET /rentals/live - Write failed, closing feed: %v", err)
		return rentaltimer.ErrStop
	}
	return nil
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.opts.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
