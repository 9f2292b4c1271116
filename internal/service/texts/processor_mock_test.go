package texts

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

var _ processor = &processorMock{}

type processorMock struct {
	ProcessFunc func(ctx context.Context, userID uuid.UUID, text string) (*domain.ProcessingResult, error)

	calls struct {
		Process []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Text   string
		}
	}
	lockProcess sync.RWMutex
}

func (mock *processorMock) Process(ctx context.Context, userID uuid.UUID, text string) (*domain.ProcessingResult, error) {
	if mock.ProcessFunc == nil {
		panic("processorMock.ProcessFunc: method is nil but processor.Process was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Text   string
	}{Ctx: ctx, UserID: userID, Text: text}
	mock.lockProcess.Lock()
	mock.calls.Process = append(mock.calls.Process, callInfo)
	mock.lockProcess.Unlock()
	return mock.ProcessFunc(ctx, userID, text)
}

func (mock *processorMock) ProcessCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Text   string
} {
	mock.lockProcess.RLock()
	calls := mock.calls.Process
	mock.lockProcess.RUnlock()
	return calls
}
