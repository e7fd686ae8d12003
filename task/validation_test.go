package task

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"valid", "Buy milk", "Buy milk", nil},
		{"trims whitespace", "  Buy milk  ", "Buy milk", nil},
		{"unicode", "café ☕", "café ☕", nil},
		{"max length", strings.Repeat("a", MaxDescriptionLength), strings.Repeat("a", MaxDescriptionLength), nil},
		{"empty", "", "", ErrEmptyDescription},
		{"whitespace only", "   \t\n", "", ErrEmptyDescription},
		{"too long", strings.Repeat("a", MaxDescriptionLength+1), "", ErrDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDescription(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateDescription(%q) unexpected error: %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("ValidateDescription(%q) = %q, want %q", tt.input, got, tt.want)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDescription(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("error is not a *ValidationError: %v", err)
			} else if validationErr.Field != "description" {
				t.Errorf("Field = %q, want description", validationErr.Field)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"todo", StatusTodo, false},
		{"in-progress", StatusInProgress, false},
		{"done", StatusDone, false},
		{"DONE", StatusDone, false},
		{"  todo  ", StatusTodo, false},
		{"finished", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Errorf("ParseStatus(%q) = %v, want ErrInvalidStatus", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"medium", PriorityMedium, false},
		{"high", PriorityHigh, false},
		{"HIGH", PriorityHigh, false},
		{"", PriorityNone, false},
		{"critical", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPriority) {
					t.Errorf("ParsePriority(%q) = %v, want ErrInvalidPriority", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDueDate(t *testing.T) {
	due, err := ParseDueDate("2026-09-15")
	if err != nil {
		t.Fatalf("ParseDueDate: %v", err)
	}
	if due == nil || due.String() != "2026-09-15" {
		t.Errorf("ParseDueDate = %v, want 2026-09-15", due)
	}

	due, err = ParseDueDate("  ")
	if err != nil || due != nil {
		t.Errorf("ParseDueDate(blank) = %v, %v; want nil, nil", due, err)
	}

	if _, err := ParseDueDate("soon"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseDueDate(soon) = %v, want ErrInvalidDate", err)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"work", "work"},
		{"  work  ", "work"},
		{"", DefaultCategory},
		{"   ", DefaultCategory},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.input); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateTask(t *testing.T) {
	now := Now()
	valid := Task{ID: 1, Description: "ok", Status: StatusTodo, Category: "general", CreatedAt: now, UpdatedAt: now}

	if err := ValidateTask(&valid); err != nil {
		t.Errorf("valid task rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{"zero id", func(t *Task) { t.ID = 0 }, ErrInvalidID},
		{"empty description", func(t *Task) { t.Description = "" }, ErrEmptyDescription},
		{"bad status", func(t *Task) { t.Status = "open" }, ErrInvalidStatus},
		{"bad priority", func(t *Task) { t.Priority = "urgent" }, ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := valid
			tt.mutate(&broken)
			if err := ValidateTask(&broken); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTask = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
