// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar access and generate
// token.json. Only needed when the credentials file is an OAuth Desktop App
// credential; service account credentials need no interactive step.
//
// Usage:
//   go run scripts/gcal-auth/main.go [credentials-file]
//
// It prints a browser URL; log in with the Google account that owns the
// calendar, paste the authorization code, and token.json will be saved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open the following URL in a browser and log in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	tokenPath := "token.json"
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create token.json: %v", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write token.json: %v", err)
	}

	fmt.Println()
	fmt.Printf("token.json saved at: %s\n", tokenPath)
	fmt.Println("Restart the server to enable the calendar mirror.")
}
