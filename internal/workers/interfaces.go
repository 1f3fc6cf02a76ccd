// Package workers runs the client's background loops.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] starts
// a set of them together and waits until all have returned.
package workers

import (
	"context"

	"github.com/MKhiriev/clip-keeper/models"
)

// Worker is a background loop.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (t *ticker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// MessageHandler accepts messages for the client core.
type MessageHandler interface {
	Handle(ctx context.Context, msg models.Message) models.MessageResponse
}
