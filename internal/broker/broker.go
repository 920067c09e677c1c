package broker

import "context"

// Producer delivers one keyed message to the alerts topic. Messages sharing a
// key keep their relative order.
type Producer interface {
	SendMessage(ctx context.Context, key, value []byte) error
}
