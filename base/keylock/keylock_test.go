package keylock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type keyLockSuite struct {
	suite.Suite
}

func (s *keyLockSuite) TestSameKeySerializes() {
	l := New()
	l.Lock("a")

	acquired := make(chan struct{})
	go func() {
		l.Lock("a")
		close(acquired)
	}()

	select {
	case <-acquired:
		s.Fail("second holder acquired a held key")
	case <-time.After(50 * time.Millisecond):
	}

	l.Unlock("a")

	select {
	case <-acquired:
	case <-time.After(time.Second):
		s.Fail("waiter never acquired the key after release")
	}
	l.Unlock("a")
}

func (s *keyLockSuite) TestDifferentKeysDoNotBlock() {
	l := New()
	l.Lock("a")

	acquired := make(chan struct{})
	go func() {
		l.Lock("b")
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		s.Fail("unrelated key blocked")
	}
	l.Unlock("b")
	l.Unlock("a")
}

func (s *keyLockSuite) TestReleasedKeyIsForgotten() {
	l := New()
	l.Lock("a")
	l.Unlock("a")
	s.Len(l.entries, 0)

	l.Lock("a")
	l.Unlock("a")
	s.Len(l.entries, 0)
}

func (s *keyLockSuite) TestUnlockWithoutLockPanics() {
	l := New()
	s.Panics(func() { l.Unlock("a") })
}

func TestKeyLockSuite(t *testing.T) {
	suite.Run(t, new(keyLockSuite))
}
