package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateManager_SetGet(t *testing.T) {
	t.Parallel()

	sm := NewStateManager()
	sm.Set(1, UserState{WaitingFor: stateAwaitingPhoto, TaskSender: "111"})

	state, ok := sm.Get(1)
	assert.True(t, ok)
	assert.Equal(t, stateAwaitingPhoto, state.WaitingFor)
	assert.Equal(t, "111", state.TaskSender)

	// Get consumes the state.
	_, ok = sm.Get(1)
	assert.False(t, ok)
}

func TestStateManager_GetUnknownUser(t *testing.T) {
	t.Parallel()

	sm := NewStateManager()

	_, ok := sm.Get(42)
	assert.False(t, ok)
}

func TestStateManager_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	sm := NewStateManager()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sm.Set(id, UserState{WaitingFor: stateAwaitingPhoto})
			sm.Get(id)
		}(int64(i))
	}
	wg.Wait()
}
