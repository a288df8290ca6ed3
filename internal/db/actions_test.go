package db

import (
	"regexp"
	"testing"
)

func TestDefaultPage(t *testing.T) {
	page, status := DefaultPage(7)

	if page.PageIndex != 7 || status.PageIndex != 7 {
		t.Errorf("page indexes = %d/%d, want 7/7", page.PageIndex, status.PageIndex)
	}
	if !regexp.MustCompile(`^[0-9a-f]{16}\.html$`).MatchString(page.Filename) {
		t.Errorf("Filename = %q, want 16 hex chars + .html", page.Filename)
	}
	if status.Sender != "Sender 7" || status.Receiver != "Receiver 7" {
		t.Errorf("status = %+v", status)
	}
	if status.Content != "This is the content of page 7." {
		t.Errorf("Content = %q", status.Content)
	}
	if !status.Status {
		t.Error("Status = false, want true")
	}
}
