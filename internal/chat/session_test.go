package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/filtering"
)

type recordingApplier struct {
	batches [][]filtering.Action
}

func (r *recordingApplier) ApplyAll(actions []filtering.Action) {
	r.batches = append(r.batches, actions)
}

func TestSessionStartsWithWelcome(t *testing.T) {
	s := NewSession(zap.NewNop(), &recordingApplier{}, 0)

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, welcomeID, msgs[0].ID)
	assert.Equal(t, SenderAssistant, msgs[0].Sender)
	assert.Equal(t, welcomeText, msgs[0].Content)
}

func TestProcessAppliesActionsAsOneBatch(t *testing.T) {
	applier := &recordingApplier{}
	s := NewSession(zap.NewNop(), applier, 0)

	reply, err := s.Process(context.Background(), "Show me people from Google")
	require.NoError(t, err)

	require.Len(t, applier.batches, 1)
	assert.Equal(t, []filtering.Action{
		filtering.CompanyAction("Google"),
		filtering.TabAction(filtering.TabCompanies),
	}, applier.batches[0])

	assert.Equal(t, SenderAssistant, reply.Sender)
	assert.Contains(t, reply.Content, "Google")
	assert.Len(t, s.Messages(), 3)
}

func TestProcessFallbackAppliesNothing(t *testing.T) {
	applier := &recordingApplier{}
	s := NewSession(zap.NewNop(), applier, 0)

	reply, err := s.Process(context.Background(), "hello there")
	require.NoError(t, err)

	assert.Empty(t, applier.batches)
	assert.Contains(t, reply.Content, "I'm not sure how to filter based on that.")
}

func TestProcessEmptyMessage(t *testing.T) {
	s := NewSession(zap.NewNop(), &recordingApplier{}, 0)

	_, err := s.Process(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, s.Messages(), 1)
}

func TestProcessCancelledContextKeepsUserMessage(t *testing.T) {
	applier := &recordingApplier{}
	s := NewSession(zap.NewNop(), applier, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Process(ctx, "layoffs?")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, applier.batches)

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, SenderUser, msgs[1].Sender)
}

func TestOnNewQuestionHookRunsBeforeParse(t *testing.T) {
	applier := &recordingApplier{}
	s := NewSession(zap.NewNop(), applier, 0)

	called := 0
	s.OnNewQuestion(func() { called++ })

	_, err := s.Process(context.Background(), "anyone laid off?")
	require.NoError(t, err)
	assert.Equal(t, 1, called)
}

func TestResetRestoresWelcome(t *testing.T) {
	s := NewSession(zap.NewNop(), &recordingApplier{}, 0)

	_, err := s.Process(context.Background(), "anyone laid off?")
	require.NoError(t, err)
	require.Greater(t, len(s.Messages()), 1)

	s.Reset()
	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, welcomeID, msgs[0].ID)
}
