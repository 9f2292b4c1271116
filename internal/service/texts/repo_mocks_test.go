package texts

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

var _ savedTextRepo = &savedTextRepoMock{}

type savedTextRepoMock struct {
	CreateFunc  func(ctx context.Context, text *domain.SavedText) (*domain.SavedText, error)
	GetByIDFunc func(ctx context.Context, userID, textID uuid.UUID) (*domain.SavedText, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SavedText, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Text *domain.SavedText
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TextID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *savedTextRepoMock) Create(ctx context.Context, text *domain.SavedText) (*domain.SavedText, error) {
	if mock.CreateFunc == nil {
		panic("savedTextRepoMock.CreateFunc: method is nil but savedTextRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text *domain.SavedText
	}{Ctx: ctx, Text: text}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, text)
}

func (mock *savedTextRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Text *domain.SavedText
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *savedTextRepoMock) GetByID(ctx context.Context, userID, textID uuid.UUID) (*domain.SavedText, error) {
	if mock.GetByIDFunc == nil {
		panic("savedTextRepoMock.GetByIDFunc: method is nil but savedTextRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TextID uuid.UUID
	}{Ctx: ctx, UserID: userID, TextID: textID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, textID)
}

func (mock *savedTextRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SavedText, error) {
	if mock.ListFunc == nil {
		panic("savedTextRepoMock.ListFunc: method is nil but savedTextRepo.List was just called")
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

func (mock *savedTextRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ extractedWordRepo = &extractedWordRepoMock{}

type extractedWordRepoMock struct {
	BulkCreateFunc      func(ctx context.Context, words []domain.ExtractedWord) error
	ListBySavedTextFunc func(ctx context.Context, savedTextID uuid.UUID) ([]domain.ExtractedWord, error)

	calls struct {
		BulkCreate []struct {
			Ctx   context.Context
			Words []domain.ExtractedWord
		}
		ListBySavedText []struct {
			Ctx         context.Context
			SavedTextID uuid.UUID
		}
	}
	lockBulkCreate      sync.RWMutex
	lockListBySavedText sync.RWMutex
}

func (mock *extractedWordRepoMock) BulkCreate(ctx context.Context, words []domain.ExtractedWord) error {
	if mock.BulkCreateFunc == nil {
		panic("extractedWordRepoMock.BulkCreateFunc: method is nil but extractedWordRepo.BulkCreate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Words []domain.ExtractedWord
	}{Ctx: ctx, Words: words}
	mock.lockBulkCreate.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, callInfo)
	mock.lockBulkCreate.Unlock()
	return mock.BulkCreateFunc(ctx, words)
}

func (mock *extractedWordRepoMock) BulkCreateCalls() []struct {
	Ctx   context.Context
	Words []domain.ExtractedWord
} {
	mock.lockBulkCreate.RLock()
	calls := mock.calls.BulkCreate
	mock.lockBulkCreate.RUnlock()
	return calls
}

func (mock *extractedWordRepoMock) ListBySavedText(ctx context.Context, savedTextID uuid.UUID) ([]domain.ExtractedWord, error) {
	if mock.ListBySavedTextFunc == nil {
		panic("extractedWordRepoMock.ListBySavedTextFunc: method is nil but extractedWordRepo.ListBySavedText was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		SavedTextID uuid.UUID
	}{Ctx: ctx, SavedTextID: savedTextID}
	mock.lockListBySavedText.Lock()
	mock.calls.ListBySavedText = append(mock.calls.ListBySavedText, callInfo)
	mock.lockListBySavedText.Unlock()
	return mock.ListBySavedTextFunc(ctx, savedTextID)
}

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	FindByBaseFormFunc func(ctx context.Context, class domain.WordClass, baseForm string) (*domain.LexicalEntry, error)
	CreateFunc         func(ctx context.Context, e *domain.LexicalEntry) (*domain.LexicalEntry, error)

	calls struct {
		FindByBaseForm []struct {
			Ctx      context.Context
			Class    domain.WordClass
			BaseForm string
		}
		Create []struct {
			Ctx   context.Context
			Entry *domain.LexicalEntry
		}
	}
	lockFindByBaseForm sync.RWMutex
	lockCreate         sync.RWMutex
}

func (mock *entryRepoMock) FindByBaseForm(ctx context.Context, class domain.WordClass, baseForm string) (*domain.LexicalEntry, error) {
	if mock.FindByBaseFormFunc == nil {
		panic("entryRepoMock.FindByBaseFormFunc: method is nil but entryRepo.FindByBaseForm was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Class    domain.WordClass
		BaseForm string
	}{Ctx: ctx, Class: class, BaseForm: baseForm}
	mock.lockFindByBaseForm.Lock()
	mock.calls.FindByBaseForm = append(mock.calls.FindByBaseForm, callInfo)
	mock.lockFindByBaseForm.Unlock()
	return mock.FindByBaseFormFunc(ctx, class, baseForm)
}

func (mock *entryRepoMock) FindByBaseFormCalls() []struct {
	Ctx      context.Context
	Class    domain.WordClass
	BaseForm string
} {
	mock.lockFindByBaseForm.RLock()
	calls := mock.calls.FindByBaseForm
	mock.lockFindByBaseForm.RUnlock()
	return calls
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.LexicalEntry) (*domain.LexicalEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.LexicalEntry
	}{Ctx: ctx, Entry: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.LexicalEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
