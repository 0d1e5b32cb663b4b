package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain/event"
	mEvent "github.com/strategic-club/commerce-api/domain/event/mocks"
)

var mockCtx = ctx.Background()

func TestRecord(t *testing.T) {
	req := require.New(t)
	mockRepo := &mEvent.Repo{}
	mockRepo.On("Insert", mockCtx, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeAuctionBid && e.Payload["tokenId"] == "1" && !e.CreatedAt.IsZero()
	})).Return(nil).Once()

	New(mockRepo).Record(mockCtx, event.TypeAuctionBid, map[string]interface{}{"tokenId": "1"})
	req.True(mockRepo.AssertExpectations(t))
}

func TestRecordSwallowsInsertFailure(t *testing.T) {
	mockRepo := &mEvent.Repo{}
	mockRepo.On("Insert", mockCtx, mock.Anything).Return(xerrors.New("down")).Once()

	// must not panic, the emitting operation already succeeded
	New(mockRepo).Record(mockCtx, event.TypeAuctionBid, nil)
}

func TestFindAllDelegates(t *testing.T) {
	req := require.New(t)
	mockRepo := &mEvent.Repo{}
	mockRepo.On("FindAll", mockCtx).Return([]event.Event{{Type: event.TypeMintCreated}}, nil).Once()

	res, err := New(mockRepo).FindAll(mockCtx)
	req.NoError(err)
	req.Len(res, 1)
}
