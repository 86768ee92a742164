package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const changeChannelPrefix = "changes:"

// ChangeFeed publishes change events on changes:<entity> channels and
// streams them back to subscribers.
type ChangeFeed struct {
	client goredis.UniversalClient
	log    zerolog.Logger
}

func NewChangeFeed(client goredis.UniversalClient, log zerolog.Logger) *ChangeFeed {
	return &ChangeFeed{client: client, log: log}
}

func ChangeChannel(entity domain.ChangeEntity) string {
	return changeChannelPrefix + string(entity)
}

func (f *ChangeFeed) Publish(ctx context.Context, event domain.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	if err := f.client.Publish(ctx, ChangeChannel(event.Entity), payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe listens on every change channel. The returned channel is closed
// when ctx is done or the subscription drops.
func (f *ChangeFeed) Subscribe(ctx context.Context) (<-chan domain.ChangeEvent, error) {
	sub := f.client.PSubscribe(ctx, changeChannelPrefix+"*")
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis psubscribe: %w", err)
	}

	out := make(chan domain.ChangeEvent, 16)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event domain.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					f.log.Warn().Err(err).Str("channel", msg.Channel).Msg("dropping malformed change event")
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

var (
	_ ports.ChangePublisher  = (*ChangeFeed)(nil)
	_ ports.ChangeSubscriber = (*ChangeFeed)(nil)
)
