// scripts/gcal-auth/main.go
//
// Run this ONCE to authorize Google Calendar access and store the credential
// the sync service refreshes from then on.
//
// Usage:
//   go run scripts/gcal-auth/main.go
//
// Open the printed URL, grant access, then paste either the code or the whole
// redirect URL back here.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"notion-gcal-sync/config"
	dbsqlite "notion-gcal-sync/config/sqlite"
	"notion-gcal-sync/internal/credential"
	credentialRepo "notion-gcal-sync/internal/credential/repository/sqlite"
	credentialUC "notion-gcal-sync/internal/credential/usecase"
	"notion-gcal-sync/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateOAuth(); err != nil {
		stdlog.Fatalf("Set GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REDIRECT_URI first: %v", err)
	}

	logger := log.Init(log.ZapConfig{Level: "warn", Mode: "production", Encoding: "console"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := dbsqlite.Connect(ctx, cfg.Database)
	if err != nil {
		stdlog.Fatalf("Failed to open database %s: %v", cfg.Database.Path, err)
	}
	defer dbsqlite.Disconnect(ctx, db)

	uc := credentialUC.New(logger, credentialRepo.New(db, logger), cfg.GoogleCalendar.OAuth2())

	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and grant calendar access:")
	fmt.Println()
	state := uuid.NewString()
	fmt.Println(uc.AuthURL(state))
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code (or the full redirect URL): ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		stdlog.Fatalf("Failed to read authorization code: %v", err)
	}

	code, err := extractCode(line, state)
	if err != nil {
		stdlog.Fatalf("%v", err)
	}

	out, err := uc.Bootstrap(ctx, credential.BootstrapInput{Identity: cfg.Sync.Identity, Code: code})
	if err != nil {
		stdlog.Fatalf("Failed to store credential: %v", err)
	}

	fmt.Println()
	fmt.Printf("Credential for %q stored in %s (access token valid until %s).\n",
		out.Record.Identity, cfg.Database.Path, out.Record.AccessExpiry.Format(time.RFC3339))
}

// extractCode accepts a bare code or a redirect URL carrying ?code=. A
// redirect URL must echo the state printed with the consent URL.
func extractCode(input, state string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("no code provided")
	}

	if strings.Contains(input, "://") {
		u, err := url.Parse(input)
		if err != nil {
			return "", fmt.Errorf("invalid redirect URL: %w", err)
		}
		code := u.Query().Get("code")
		if code == "" {
			return "", errors.New("redirect URL has no code parameter")
		}
		if got := u.Query().Get("state"); got != state {
			return "", fmt.Errorf("redirect URL state %q does not match this session", got)
		}
		return code, nil
	}

	return input, nil
}
