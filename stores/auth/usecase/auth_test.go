package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

func TestSignAndParseToken(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	subject := New("test-secret")
	address := domain.Address("0xCE4468e7Ce84acEB74363F4EA64e5A038176F369")

	token, err := subject.SignToken(c, address)
	req.NoError(err)
	req.NotEmpty(token)

	parsed, err := subject.ParseToken(c, token)
	req.NoError(err)
	req.Equal(address.ToLowerStr(), parsed)
}

func TestSignTokenNullAddress(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	subject := New("test-secret")

	_, err := subject.SignToken(c, domain.EmptyAddress)
	req.Equal(domain.ErrNullAddress, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	address := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")

	token, err := New("test-secret").SignToken(c, address)
	req.NoError(err)

	_, err = New("other-secret").ParseToken(c, token)
	req.Error(err)
}

func TestParseTokenGarbage(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	_, err := New("test-secret").ParseToken(c, "not-a-token")
	req.Error(err)
}
