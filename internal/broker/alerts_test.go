package broker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Egor213/LogiWatch/internal/broker"
	"github.com/Egor213/LogiWatch/internal/domain"
	brokermocks "github.com/Egor213/LogiWatch/internal/mocks/broker"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAlertPublisher_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := brokermocks.NewMockProducer(ctrl)
	pub := broker.NewAlertPublisher(producer, "logiwatch")

	a := domain.Alert{
		ID:       7,
		Kind:     domain.AlertRestrictedURL,
		Severity: domain.SeverityHigh,
		User:     "alice",
		URL:      "/admin/users",
	}

	producer.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key, value []byte) error {
			_, err := uuid.ParseBytes(key)
			require.NoError(t, err)

			var ev broker.AlertEvent
			require.NoError(t, json.Unmarshal(value, &ev))
			assert.Equal(t, string(key), ev.EventID)
			assert.Equal(t, "logiwatch", ev.Source)
			assert.Equal(t, a.Kind, ev.Alert.Kind)
			assert.Equal(t, a.ID, ev.Alert.ID)
			return nil
		})

	assert.False(t, pub.AlertsVisible())
	assert.NoError(t, pub.Notify(context.Background(), a))
}

func TestAlertPublisher_NotifyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := brokermocks.NewMockProducer(ctrl)
	pub := broker.NewAlertPublisher(producer, "logiwatch")

	boom := errors.New("broker down")
	producer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	assert.ErrorIs(t, pub.Notify(context.Background(), domain.Alert{}), boom)
}
