package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// Ambush delivery: watch the recipient's tmux client and pop the card
// full-screen once they have been idle long enough to be surprised.

const (
	defaultAmbushTimeout = 300
	ambushPollInterval   = 5
)

func execAmbush(timeout int, once bool) error {
	// The popup re-invokes this same binary's run command.
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("finding executable path: %w", err)
	}

	if once {
		springCard(exePath)
		return nil
	}

	if os.Getenv("TMUX") == "" {
		return fmt.Errorf("not running inside tmux")
	}

	// SIGINT/SIGTERM stop the watcher; the card itself has no abort path.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("heartlock ambush armed (timeout: %ds, poll: %ds)\n", timeout, ambushPollInterval)

	ticker := time.NewTicker(ambushPollInterval * time.Second)
	defer ticker.Stop()

	// After springing once, wait for the recipient to become active again
	// before re-arming; closing the popup does not update
	// #{client_activity}.
	waitingForActivity := false

	for {
		select {
		case <-ctx.Done():
			fmt.Println("heartlock ambush disarmed")
			return nil
		case <-ticker.C:
			idleSeconds, err := clientIdleSeconds(ctx)
			if err != nil {
				continue
			}

			if waitingForActivity {
				if idleSeconds < timeout {
					waitingForActivity = false
				}
			} else if idleSeconds >= timeout {
				springCard(exePath)
				waitingForActivity = true
			}
		}
	}
}

func clientIdleSeconds(ctx context.Context) (int, error) {
	cmd := exec.CommandContext(ctx, "tmux", "display-message", "-p", "#{client_activity}")
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("get client activity: %w", err)
	}
	return idleSecondsSince(string(out), time.Now().Unix())
}

// idleSecondsSince converts a tmux #{client_activity} timestamp into
// seconds of idle time relative to now.
func idleSecondsSince(activity string, now int64) (int, error) {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return 0, fmt.Errorf("empty activity timestamp")
	}

	activityTime, err := strconv.ParseInt(activity, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse activity timestamp: %w", err)
	}

	return max(int(now-activityTime), 0), nil
}

// springCard opens the card in a full-screen tmux popup and waits until
// the recipient plays it through (or closes the popup).
func springCard(exePath string) {
	popupArgs := []string{
		"display-popup",
		"-E",
		"-w", "100%",
		"-h", "100%",
		exePath + " run",
	}

	// The popup is interactive: it must outlive any watcher signal, so no
	// CommandContext here.
	cmd := exec.Command("tmux", popupArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Run()
}
