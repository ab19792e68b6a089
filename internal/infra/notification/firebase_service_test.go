package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"pharmacy/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	response *messaging.BatchResponse
	err      error
	got      *messaging.MulticastMessage
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = message

	return f.response, f.err
}

func TestFirebaseService_SendMulticast(t *testing.T) {
	sender := &fakeSender{
		response: &messaging.BatchResponse{
			SuccessCount: 2,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true},
				{Success: false, Error: errors.New("transient")},
				{Success: true},
			},
		},
	}
	svc := &firebaseService{client: sender}

	result, err := svc.SendMulticast(context.Background(), []string{"a", "b", "c"}, &service.PushMessage{
		Title: "Order shipped",
		Body:  "Your order is on the way",
		Data:  map[string]string{"order_id": "1"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
	assert.Equal(t, []string{"a", "b", "c"}, sender.got.Tokens)
	assert.Equal(t, "Order shipped", sender.got.Notification.Title)
}

func TestFirebaseService_SendMulticast_EmptyTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	result, err := svc.SendMulticast(context.Background(), nil, &service.PushMessage{Title: "x"})

	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Nil(t, sender.got)
}

func TestFirebaseService_SendMulticast_TooManyTokens(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{}}
	tokens := make([]string, service.MaxMulticastTokens+1)

	_, err := svc.SendMulticast(context.Background(), tokens, &service.PushMessage{Title: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "token count exceeds limit")
}

func TestFirebaseService_SendMulticast_ClientError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

	_, err := svc.SendMulticast(context.Background(), []string{"a"}, &service.PushMessage{Title: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send multicast notification")
}

func TestLogService_SendMulticast(t *testing.T) {
	svc := NewLogService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := svc.SendMulticast(context.Background(), []string{"a", "b"}, &service.PushMessage{Title: "x"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
}
