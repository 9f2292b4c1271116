package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

var _ extractedWordRepo = &extractedWordRepoMock{}

type extractedWordRepoMock struct {
	ListByClassFunc  func(ctx context.Context, userID uuid.UUID, class domain.WordClass, limit, offset int) ([]domain.ExtractedWord, error)
	CountByClassFunc func(ctx context.Context, userID uuid.UUID) (map[domain.WordClass]int, error)

	calls struct {
		ListByClass []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Class  domain.WordClass
			Limit  int
			Offset int
		}
		CountByClass []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListByClass  sync.RWMutex
	lockCountByClass sync.RWMutex
}

func (mock *extractedWordRepoMock) ListByClass(ctx context.Context, userID uuid.UUID, class domain.WordClass, limit, offset int) ([]domain.ExtractedWord, error) {
	if mock.ListByClassFunc == nil {
		panic("extractedWordRepoMock.ListByClassFunc: method is nil but extractedWordRepo.ListByClass was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Class  domain.WordClass
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Class: class, Limit: limit, Offset: offset}
	mock.lockListByClass.Lock()
	mock.calls.ListByClass = append(mock.calls.ListByClass, callInfo)
	mock.lockListByClass.Unlock()
	return mock.ListByClassFunc(ctx, userID, class, limit, offset)
}

func (mock *extractedWordRepoMock) ListByClassCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Class  domain.WordClass
	Limit  int
	Offset int
} {
	mock.lockListByClass.RLock()
	calls := mock.calls.ListByClass
	mock.lockListByClass.RUnlock()
	return calls
}

func (mock *extractedWordRepoMock) CountByClass(ctx context.Context, userID uuid.UUID) (map[domain.WordClass]int, error) {
	if mock.CountByClassFunc == nil {
		panic("extractedWordRepoMock.CountByClassFunc: method is nil but extractedWordRepo.CountByClass was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByClass.Lock()
	mock.calls.CountByClass = append(mock.calls.CountByClass, callInfo)
	mock.lockCountByClass.Unlock()
	return mock.CountByClassFunc(ctx, userID)
}

var _ practicedRepo = &practicedRepoMock{}

type practicedRepoMock struct {
	CreateFunc      func(ctx context.Context, w *domain.PracticedWord) (*domain.PracticedWord, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PracticedWord, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Word *domain.PracticedWord
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockList        sync.RWMutex
	lockCountByUser sync.RWMutex
}

func (mock *practicedRepoMock) Create(ctx context.Context, w *domain.PracticedWord) (*domain.PracticedWord, error) {
	if mock.CreateFunc == nil {
		panic("practicedRepoMock.CreateFunc: method is nil but practicedRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word *domain.PracticedWord
	}{Ctx: ctx, Word: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *practicedRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Word *domain.PracticedWord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *practicedRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PracticedWord, error) {
	if mock.ListFunc == nil {
		panic("practicedRepoMock.ListFunc: method is nil but practicedRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, limit, offset)
}

func (mock *practicedRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("practicedRepoMock.CountByUserFunc: method is nil but practicedRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ExistsByBaseFormFunc func(ctx context.Context, class domain.WordClass, baseForm string) (bool, error)

	calls struct {
		ExistsByBaseForm []struct {
			Ctx      context.Context
			Class    domain.WordClass
			BaseForm string
		}
	}
	lockExistsByBaseForm sync.RWMutex
}

func (mock *entryRepoMock) ExistsByBaseForm(ctx context.Context, class domain.WordClass, baseForm string) (bool, error) {
	if mock.ExistsByBaseFormFunc == nil {
		panic("entryRepoMock.ExistsByBaseFormFunc: method is nil but entryRepo.ExistsByBaseForm was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Class    domain.WordClass
		BaseForm string
	}{Ctx: ctx, Class: class, BaseForm: baseForm}
	mock.lockExistsByBaseForm.Lock()
	mock.calls.ExistsByBaseForm = append(mock.calls.ExistsByBaseForm, callInfo)
	mock.lockExistsByBaseForm.Unlock()
	return mock.ExistsByBaseFormFunc(ctx, class, baseForm)
}

func (mock *entryRepoMock) ExistsByBaseFormCalls() []struct {
	Ctx      context.Context
	Class    domain.WordClass
	BaseForm string
} {
	mock.lockExistsByBaseForm.RLock()
	calls := mock.calls.ExistsByBaseForm
	mock.lockExistsByBaseForm.RUnlock()
	return calls
}
