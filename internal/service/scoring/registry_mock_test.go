package scoring

import (
	"context"
	"sync"
)

var _ properNounRegistry = &properNounRegistryMock{}

type properNounRegistryMock struct {
	AddFunc    func(ctx context.Context, word string) (bool, error)
	RemoveFunc func(ctx context.Context, word string) error
	AllFunc    func(ctx context.Context) ([]string, error)

	calls struct {
		Add []struct {
			Ctx  context.Context
			Word string
		}
		Remove []struct {
			Ctx  context.Context
			Word string
		}
		All []struct {
			Ctx context.Context
		}
	}
	lockAdd    sync.RWMutex
	lockRemove sync.RWMutex
	lockAll    sync.RWMutex
}

func (mock *properNounRegistryMock) Add(ctx context.Context, word string) (bool, error) {
	if mock.AddFunc == nil {
		panic("properNounRegistryMock.AddFunc: method is nil but properNounRegistry.Add was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, word)
}

func (mock *properNounRegistryMock) AddCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *properNounRegistryMock) Remove(ctx context.Context, word string) error {
	if mock.RemoveFunc == nil {
		panic("properNounRegistryMock.RemoveFunc: method is nil but properNounRegistry.Remove was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, word)
}

func (mock *properNounRegistryMock) RemoveCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *properNounRegistryMock) All(ctx context.Context) ([]string, error) {
	if mock.AllFunc == nil {
		panic("properNounRegistryMock.AllFunc: method is nil but properNounRegistry.All was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAll.Lock()
	mock.calls.All = append(mock.calls.All, callInfo)
	mock.lockAll.Unlock()
	return mock.AllFunc(ctx)
}

func (mock *properNounRegistryMock) AllCalls() []struct {
	Ctx context.Context
} {
	mock.lockAll.RLock()
	calls := mock.calls.All
	mock.lockAll.RUnlock()
	return calls
}
