package parser

import (
	"testing"

	"github.com/scriptlens/scriptlens/internal/types"
)

func TestDetectScriptError(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantNil     bool
		wantMessage string
		wantOutput  string
	}{
		{
			name:        "executor banner with output",
			input:       "Error when executing the script - boom\noutput:\nleftover",
			wantMessage: "boom",
			wantOutput:  "leftover",
		},
		{
			name:        "executor banner without output",
			input:       "Error when executing the script - timeout after 30s",
			wantMessage: "timeout after 30s",
			wantOutput:  "",
		},
		{
			name:        "executor banner empty message",
			input:       "Error when executing the script - ",
			wantMessage: "Unknown error",
			wantOutput:  "",
		},
		{
			name:        "executor banner en dash",
			input:       "error when executing the script – access denied",
			wantMessage: "access denied",
			wantOutput:  "",
		},
		{
			name:        "executor banner case insensitive multiline output",
			input:       "ERROR WHEN EXECUTING THE SCRIPT - fail\noutput:\nline1\nline2",
			wantMessage: "fail",
			wantOutput:  "line1\nline2",
		},
		{
			name:        "Error prefix",
			input:       "Error: connection refused\nstack trace here",
			wantMessage: "connection refused",
			wantOutput:  "Error: connection refused\nstack trace here",
		},
		{
			name:        "ERROR prefix with surrounding whitespace",
			input:       "\n  ERROR: no route to host  ",
			wantMessage: "no route to host",
			wantOutput:  "ERROR: no route to host",
		},
		{
			name:    "ordinary output",
			input:   "a=1\nb=2",
			wantNil: true,
		},
		{
			name:    "error word mid-line is not a failure",
			input:   "message=an error occurred while polling",
			wantNil: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectScriptError(tt.input)
			if tt.wantNil {
				if result != nil {
					t.Fatalf("DetectScriptError() = %+v, want nil", result)
				}
				return
			}
			if result == nil {
				t.Fatal("DetectScriptError() = nil, want script error result")
			}
			if result.Kind != types.KindScriptError {
				t.Errorf("Kind = %s, want %s", result.Kind, types.KindScriptError)
			}
			if result.ScriptError == nil {
				t.Fatal("ScriptError variant not populated")
			}
			if result.ScriptError.ErrorMessage != tt.wantMessage {
				t.Errorf("ErrorMessage = %q, want %q", result.ScriptError.ErrorMessage, tt.wantMessage)
			}
			if result.ScriptError.Output != tt.wantOutput {
				t.Errorf("Output = %q, want %q", result.ScriptError.Output, tt.wantOutput)
			}
			if len(result.ScriptError.Issues) != 1 || result.ScriptError.Issues[0].Severity != types.SeverityError {
				t.Errorf("Issues = %+v, want exactly one error issue", result.ScriptError.Issues)
			}
			want := types.ParseSummary{Total: 1, Valid: 0, Errors: 1, Warnings: 0}
			if result.Summary != want {
				t.Errorf("Summary = %+v, want %+v", result.Summary, want)
			}
		})
	}
}
