package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
	storagefile "github.com/odrawq/bolochagina-tgbot/internal/storage/file"
)

// TestQuestionLifecycle walks one question from submission to resolution
// against the real file-backed store.
func TestQuestionLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":[]}`), 0o600))

	store, err := storagefile.Open(path)
	require.NoError(t, err)

	transport := &stubTransport{}
	b := New(transport, store, 1, false, 4, zap.NewNop())

	b.handleMessage(privateMessage(1, "root", cmdStart))
	b.handleMessage(privateMessage(100, "alice", cmdStart))
	b.handleMessage(privateMessage(100, "alice", labelAsk))
	require.True(t, store.GetState(100, models.StateAwaitingQuestion))

	b.handleMessage(privateMessage(100, "alice", "How do hinges work?"))
	require.True(t, store.HasQuestion(100))

	b.handleMessage(privateMessage(1, "root", cmdList))
	msgs := transport.messages()
	last := msgs[len(msgs)-1]
	assert.Equal(t, int64(1), last.chatID)
	assert.Equal(t, "(100) @alice: How do hinges work?", last.text)

	b.handleMessage(privateMessage(1, "root", cmdRemove+" 100"))
	assert.False(t, store.HasQuestion(100))

	msgs = transport.messages()
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, sentMessage{chatID: 100, text: textQuestionResolved, markup: mainKeyboard},
		msgs[len(msgs)-2])
	assert.Equal(t, int64(1), msgs[len(msgs)-1].chatID)
	assert.Equal(t, textQuestionRemoved, msgs[len(msgs)-1].text)

	b.handleMessage(privateMessage(1, "root", cmdRemove+" 100"))
	msgs = transport.messages()
	assert.Equal(t, textUserHasNoQuestion, msgs[len(msgs)-1].text)

	// A reopened store must see the same resolved state.
	reopened, err := storagefile.Open(path)
	require.NoError(t, err)
	assert.True(t, reopened.Exists(100))
	assert.False(t, reopened.HasQuestion(100))
	assert.Empty(t, reopened.ListQuestions())
}
