package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyText puts s on the system clipboard.
func copyText(s string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

// pasteText returns the text currently on the system clipboard.
func pasteText() (string, error) {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return "", fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
