package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/sentencegolf/internal/scorer"
	"github.com/heartmarshall/sentencegolf/internal/service/scoring"
)

var _ scoringService = &scoringServiceMock{}

type scoringServiceMock struct {
	ScoreTextFunc          func(ctx context.Context, in scoring.ScoreTextInput) (scorer.Result, error)
	ScoreWordFunc          func(ctx context.Context, in scoring.ScoreWordInput) (int, error)
	ListProperNounsFunc    func(ctx context.Context) ([]string, error)
	RegisterProperNounFunc func(ctx context.Context, word string) error
	RemoveProperNounFunc   func(ctx context.Context, word string) error

	calls struct {
		ScoreText []struct {
			Ctx context.Context
			In  scoring.ScoreTextInput
		}
		ScoreWord []struct {
			Ctx context.Context
			In  scoring.ScoreWordInput
		}
		ListProperNouns []struct {
			Ctx context.Context
		}
		RegisterProperNoun []struct {
			Ctx  context.Context
			Word string
		}
		RemoveProperNoun []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockScoreText          sync.RWMutex
	lockScoreWord          sync.RWMutex
	lockListProperNouns    sync.RWMutex
	lockRegisterProperNoun sync.RWMutex
	lockRemoveProperNoun   sync.RWMutex
}

func (mock *scoringServiceMock) ScoreText(ctx context.Context, in scoring.ScoreTextInput) (scorer.Result, error) {
	if mock.ScoreTextFunc == nil {
		panic("scoringServiceMock.ScoreTextFunc: method is nil but scoringService.ScoreText was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  scoring.ScoreTextInput
	}{Ctx: ctx, In: in}
	mock.lockScoreText.Lock()
	mock.calls.ScoreText = append(mock.calls.ScoreText, callInfo)
	mock.lockScoreText.Unlock()
	return mock.ScoreTextFunc(ctx, in)
}

func (mock *scoringServiceMock) ScoreTextCalls() []struct {
	Ctx context.Context
	In  scoring.ScoreTextInput
} {
	mock.lockScoreText.RLock()
	calls := mock.calls.ScoreText
	mock.lockScoreText.RUnlock()
	return calls
}

func (mock *scoringServiceMock) ScoreWord(ctx context.Context, in scoring.ScoreWordInput) (int, error) {
	if mock.ScoreWordFunc == nil {
		panic("scoringServiceMock.ScoreWordFunc: method is nil but scoringService.ScoreWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  scoring.ScoreWordInput
	}{Ctx: ctx, In: in}
	mock.lockScoreWord.Lock()
	mock.calls.ScoreWord = append(mock.calls.ScoreWord, callInfo)
	mock.lockScoreWord.Unlock()
	return mock.ScoreWordFunc(ctx, in)
}

func (mock *scoringServiceMock) ScoreWordCalls() []struct {
	Ctx context.Context
	In  scoring.ScoreWordInput
} {
	mock.lockScoreWord.RLock()
	calls := mock.calls.ScoreWord
	mock.lockScoreWord.RUnlock()
	return calls
}

func (mock *scoringServiceMock) ListProperNouns(ctx context.Context) ([]string, error) {
	if mock.ListProperNounsFunc == nil {
		panic("scoringServiceMock.ListProperNounsFunc: method is nil but scoringService.ListProperNouns was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListProperNouns.Lock()
	mock.calls.ListProperNouns = append(mock.calls.ListProperNouns, callInfo)
	mock.lockListProperNouns.Unlock()
	return mock.ListProperNounsFunc(ctx)
}

func (mock *scoringServiceMock) RegisterProperNoun(ctx context.Context, word string) error {
	if mock.RegisterProperNounFunc == nil {
		panic("scoringServiceMock.RegisterProperNounFunc: method is nil but scoringService.RegisterProperNoun was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockRegisterProperNoun.Lock()
	mock.calls.RegisterProperNoun = append(mock.calls.RegisterProperNoun, callInfo)
	mock.lockRegisterProperNoun.Unlock()
	return mock.RegisterProperNounFunc(ctx, word)
}

func (mock *scoringServiceMock) RemoveProperNoun(ctx context.Context, word string) error {
	if mock.RemoveProperNounFunc == nil {
		panic("scoringServiceMock.RemoveProperNounFunc: method is nil but scoringService.RemoveProperNoun was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockRemoveProperNoun.Lock()
	mock.calls.RemoveProperNoun = append(mock.calls.RemoveProperNoun, callInfo)
	mock.lockRemoveProperNoun.Unlock()
	return mock.RemoveProperNounFunc(ctx, word)
}

func (mock *scoringServiceMock) RemoveProperNounCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockRemoveProperNoun.RLock()
	calls := mock.calls.RemoveProperNoun
	mock.lockRemoveProperNoun.RUnlock()
	return calls
}
