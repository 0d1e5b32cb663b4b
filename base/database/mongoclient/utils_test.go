package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/strategic-club/commerce-api/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableAuction struct {
		HighestBidder *string `bson:"highestBidder,omitempty"`
		EndTime       *int64  `bson:"endTime,omitempty"`
		State         int     `bson:"state"`
		HighestBid    string  `bson:"erc20HighestBid"`
	}

	patchable := &PatchableAuction{}
	patchable.HighestBidder = ptr.String("")
	patchable.EndTime = ptr.Int64(1700000000)
	patchable.HighestBid = "110"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"highestBidder": "",
			"endTime":       int64(1700000000),
			// field state is empty, so ignore
			"erc20HighestBid": "110",
		},
		updater,
	)
}
