package sync

import "time"

// Summary reports what one run did.
type Summary struct {
	RunID     string        `json:"run_id"`
	Fetched   int           `json:"fetched"`
	Cached    int           `json:"cached"`
	Created   int           `json:"created"`
	Updated   int           `json:"updated"`
	Deleted   int           `json:"deleted"`
	Skipped   int           `json:"skipped"`   // changed events with no target id
	Unchanged int           `json:"unchanged"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// WebhookPayload is the part of a Notion webhook body the trigger reads.
type WebhookPayload struct {
	VerificationToken string `json:"verification_token"`
	Type              string `json:"type"`
	Entity            struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	} `json:"entity"`
}
