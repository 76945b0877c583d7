package main

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantFlags    cliFlags
		wantDocument string
	}{
		{
			name: "no arguments",
			args: nil,
		},
		{
			name:         "document only",
			args:         []string{"report.pdf"},
			wantDocument: "report.pdf",
		},
		{
			name: "short flags",
			args: []string{"-o", "site", "-c", "team", "-v", "scan.png"},
			wantFlags: cliFlags{
				common: commonFlags{config: "team", verbose: true},
				output: "site",
			},
			wantDocument: "scan.png",
		},
		{
			name: "long flags",
			args: []string{"--output=public", "--config", "./doc2web.yaml", "--offline", "--quiet"},
			wantFlags: cliFlags{
				common:  commonFlags{config: "./doc2web.yaml", quiet: true},
				output:  "public",
				offline: true,
			},
		},
		{
			name:      "version",
			args:      []string{"--version"},
			wantFlags: cliFlags{version: true},
		},
		{
			name:      "help",
			args:      []string{"-h"},
			wantFlags: cliFlags{help: true},
		},
		{
			name:         "flags after document",
			args:         []string{"report.pdf", "--offline"},
			wantFlags:    cliFlags{offline: true},
			wantDocument: "report.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, document, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v) error = %v", tt.args, err)
			}
			if *flags != tt.wantFlags {
				t.Errorf("flags = %+v, want %+v", *flags, tt.wantFlags)
			}
			if document != tt.wantDocument {
				t.Errorf("document = %q, want %q", document, tt.wantDocument)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--workers", "4"}},
		{"missing flag value", []string{"--output"}},
		{"two documents", []string{"a.pdf", "b.pdf"}},
		{"quiet and verbose", []string{"-q", "-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseFlags(tt.args)
			if !errors.Is(err, ErrUsage) {
				t.Errorf("parseFlags(%v) error = %v, want ErrUsage", tt.args, err)
			}
		})
	}
}
