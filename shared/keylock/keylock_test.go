package keylock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/shared/keylock"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	locks := keylock.New()

	const workers = 50

	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			locks.Lock("room-1|2026-03-01")
			defer locks.Unlock("room-1|2026-03-01")

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyLockIndependentKeys(t *testing.T) {
	locks := keylock.New()

	locks.Lock("room-1|2026-03-01")
	defer locks.Unlock("room-1|2026-03-01")

	done := make(chan struct{})

	go func() {
		locks.Lock("room-2|2026-03-01")
		defer locks.Unlock("room-2|2026-03-01")

		close(done)
	}()

	<-done
}

func TestKeyLockReacquire(t *testing.T) {
	locks := keylock.New()

	locks.Lock("key")
	locks.Unlock("key")

	locks.Lock("key")
	locks.Unlock("key")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "room-1|2026-03-01", keylock.Key("room-1", "2026-03-01"))
	assert.Equal(t, "", keylock.Key())
}
