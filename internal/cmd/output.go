package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/s-age/pipe-sub004/internal/logging"
)

const timeFormat = "2006-01-02 15:04:05"

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeFormat)
}

// confirm asks a yes/no question. Aborting the prompt counts as no.
func confirm(title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		logging.Logger.Info("User aborted confirmation", "title", title)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return confirmed, nil
}
