//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IHandoffQueue pairs one producer with one consumer, without buffering.
type IHandoffQueue interface {
	Post(ctx context.Context, env domain.Envelope) error
	Take(ctx context.Context) (domain.Envelope, error)
	Close()
}

// ISequencer runs the permission chain of an envelope then calls the continuation.
type ISequencer interface {
	Run(ctx context.Context, env domain.Envelope, continuation func())
}

// IDispatcher hands a relevant envelope over to the sender's world.
type IDispatcher interface {
	Deliver(env domain.Envelope)
}

type IChatHandler interface {
	PostEvent(ctx context.Context, sender domain.Sender, event *domain.ChatEvent) error
	Start(ctx context.Context) error
	Stop()
}
