// Package chat holds the assistant conversation: a message transcript plus
// the bridge from parsed intents to the session's filter state.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/filtering"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/intent"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/logger"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/utils"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"

	welcomeID = "welcome"

	welcomeText = "Hi! I can help you filter talent and companies. " +
		"Try asking me things like 'Show me people from Google' or " +
		"'Find candidates with React experience who are approaching their average tenure'."
)

// ErrEmptyMessage is returned when the submitted text is blank.
var ErrEmptyMessage = errors.New("empty message")

// Message is one transcript entry.
type Message struct {
	ID        string
	Content   string
	Sender    string
	Timestamp time.Time
}

// Applier receives the actions produced by a parsed message. Actions from
// one message are applied as a single batch.
type Applier interface {
	ApplyAll(actions []filtering.Action)
}

// Session is one assistant conversation. It is not safe for concurrent use;
// the shared filter state behind the Applier is.
type Session struct {
	logger   *zap.Logger
	applier  Applier
	delay    time.Duration
	onSubmit func()
	messages []*Message
}

func NewSession(log *zap.Logger, applier Applier, delay time.Duration) *Session {
	s := &Session{
		logger:  log,
		applier: applier,
		delay:   delay,
	}
	s.messages = []*Message{welcome()}
	return s
}

// OnNewQuestion registers a hook invoked before each submitted message is
// processed. The caller typically clears the free-text search filter here so
// consecutive questions do not stack search terms.
func (s *Session) OnNewQuestion(fn func()) {
	s.onSubmit = fn
}

// Process records the user's message, pauses for the configured response
// delay, and parses it into a reply. Filter actions are applied only when a
// rule matched; the fallback reply changes nothing. A cancelled context
// aborts the pending reply but the user message stays in the transcript.
func (s *Session) Process(ctx context.Context, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	if s.onSubmit != nil {
		s.onSubmit()
	}

	s.append(SenderUser, text)

	if err := utils.WaitFor(ctx, s.delay); err != nil {
		return nil, err
	}

	result := intent.Parse(text)
	if result.Matched() {
		s.applier.ApplyAll(result.Actions)
	}

	s.logger.Info("message processed",
		zap.String("message", logger.TruncateForLog(text, 80)),
		zap.Int("actions", len(result.Actions)),
	)

	return s.append(SenderAssistant, result.Response), nil
}

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []*Message {
	out := make([]*Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset drops the transcript back to a fresh welcome message.
func (s *Session) Reset() {
	s.messages = []*Message{welcome()}
}

func (s *Session) append(sender, content string) *Message {
	msg := &Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

func welcome() *Message {
	return &Message{
		ID:        welcomeID,
		Content:   welcomeText,
		Sender:    SenderAssistant,
		Timestamp: time.Now(),
	}
}
