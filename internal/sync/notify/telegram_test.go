package notify

import (
	"context"
	"testing"
)

type fakeSender struct {
	chatID int64
	text   string
}

func (f *fakeSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	f.chatID, f.text = chatID, text
	return nil
}

func TestTelegramNotifier(t *testing.T) {
	s := &fakeSender{}
	if err := NewTelegram(s, 42).Notify(context.Background(), "run failed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.chatID != 42 || s.text != "run failed" {
		t.Errorf("unexpected message %+v", s)
	}
}
