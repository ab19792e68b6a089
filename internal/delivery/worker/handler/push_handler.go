package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"pharmacy/config"
	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/constants"
	"pharmacy/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// validateToken matches idtoken.Validate.
type validateToken func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives order events from a Pub/Sub push subscription (or the
// local publisher) and hands them to the EventHandler.
//
// Response codes drive redelivery: 503 asks Pub/Sub to retry, any 2xx acks.
type PushHandler struct {
	events *EventHandler
	logger *slog.Logger

	verify         bool
	validate       validateToken
	audience       string
	serviceAccount string
}

type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	EventHandler *EventHandler
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		events:   params.EventHandler,
		logger:   params.Logger,
		validate: idtoken.Validate,
	}

	// Push requests are only signed by Google; local pushes are trusted.
	if cfg := params.Config.PubSub; cfg != nil && cfg.Provider == constants.PubSubProviderGoogle {
		h.verify = params.Config.Env.Env != constants.EnvDevelop
		h.audience = cfg.PushAudience
		h.serviceAccount = cfg.PushServiceAccount
	}

	return h
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verify {
		if err := h.authenticate(c.Request()); err != nil {
			logger.Warn("rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var env pubsub.PushEnvelope
	if err := c.Bind(&env); err != nil {
		logger.Error("malformed push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	data, err := env.Payload()
	if err != nil {
		logger.Error("malformed push envelope", slog.String("message_id", env.Message.MessageID), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	retryable, err := h.events.Handle(ctx, data, env.Message.Attributes)
	if err == nil {
		return c.NoContent(http.StatusOK)
	}

	logger.Error("order event not processed",
		slog.String("message_id", env.Message.MessageID),
		slog.Int("delivery_attempt", env.DeliveryAttempt),
		slog.Bool("retryable", retryable),
		slog.Any("error", err),
	)
	if retryable {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	// Acknowledge so a poison message is not redelivered forever.
	return c.NoContent(http.StatusOK)
}

// authenticate checks the OIDC token Pub/Sub attaches to push requests.
func (h *PushHandler) authenticate(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email is not verified")
	}
	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("push signed by %q", email)
		}
	}

	return nil
}
