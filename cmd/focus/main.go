// Command focus runs a Pomodoro timer in the terminal and records the
// finished session through the study API.
//
// Usage:
//
//	focus -subject Math -minutes 120 [-goal "chapter 4"] [-api URL]
//
// The access token is read from STUDYHABIT_TOKEN. Interrupting the timer
// records the time studied so far.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/heartmarshall/studyhabit-backend/internal/pomodoro"
)

type sessionRequest struct {
	Subject         string    `json:"subject"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Goal            string    `json:"goal,omitempty"`
}

func main() {
	subject := flag.String("subject", "", "subject studied (required)")
	minutes := flag.Int("minutes", 50, "total study minutes")
	goal := flag.String("goal", "", "optional session goal")
	api := flag.String("api", "http://localhost:8080", "API base URL")
	flag.Parse()

	if strings.TrimSpace(*subject) == "" {
		log.Fatal("focus: -subject is required")
	}
	token := os.Getenv("STUDYHABIT_TOKEN")
	if token == "" {
		log.Fatal("focus: STUDYHABIT_TOKEN is not set")
	}

	timer, err := pomodoro.NewTimer(time.Duration(*minutes)*time.Minute, pomodoro.DefaultConfig())
	if err != nil {
		log.Fatalf("focus: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	run(ctx, timer, os.Stdout, time.Second)
	end := time.Now()

	studied := timer.StudiedMinutes()
	if studied == 0 {
		fmt.Println("nothing to record")
		return
	}

	req := sessionRequest{
		Subject:         *subject,
		StartTime:       start.UTC(),
		EndTime:         end.UTC(),
		DurationMinutes: studied,
		Goal:            *goal,
	}
	postCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postSession(postCtx, http.DefaultClient, *api, token, req); err != nil {
		log.Fatalf("focus: record session: %v", err)
	}
	fmt.Printf("recorded %d minutes of %s\n", studied, *subject)
}

// run drives timer with a ticker until the schedule finishes or ctx is done.
func run(ctx context.Context, timer *pomodoro.Timer, out io.Writer, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	timer.Start()
	printState(out, timer.State())
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			timer.Pause()
			fmt.Fprintln(out, "\nstopped")
			return
		case now := <-ticker.C:
			for _, tr := range timer.Advance(now.Sub(last)) {
				printTransition(out, tr)
			}
			last = now
			if timer.State().Done {
				return
			}
			printState(out, timer.State())
		}
	}
}

func printState(out io.Writer, s pomodoro.State) {
	fmt.Fprintf(out, "\r%-5s #%d  %s left  (studied %s of %s)   ",
		s.Phase, s.Cycle, s.Remaining.Round(time.Second), s.Studied.Round(time.Minute), s.Total)
}

func printTransition(out io.Writer, tr pomodoro.Transition) {
	if tr.Done {
		fmt.Fprintln(out, "\nsession complete")
		return
	}
	fmt.Fprintf(out, "\n%s -> %s (cycle %d)\n", tr.From, tr.To, tr.Cycle)
}

func postSession(ctx context.Context, client *http.Client, baseURL, token string, s sessionRequest) error {
	body, err := json.Marshal(s)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(baseURL, "/")+"/api/study/sessions", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
