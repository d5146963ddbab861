package main

import (
	"testing"

	"github.com/spf13/cobra"
	"setup-cli/pkg/models"
)

func TestBuildRequestFromFlags(t *testing.T) {
	tests := []struct {
		name      string
		flags     map[string]string
		boolFlags map[string]bool
		expected  *models.SetupRequest
	}{
		{
			name:     "no flags",
			expected: &models.SetupRequest{},
		},
		{
			name: "paths",
			flags: map[string]string{
				"config": "/etc/setup.toml",
				"root":   "/srv/frontend",
				"values": "values.json",
			},
			expected: &models.SetupRequest{
				ConfigPath: "/etc/setup.toml",
				Root:       "/srv/frontend",
				ValuesFile: "values.json",
			},
		},
		{
			name: "verbose",
			boolFlags: map[string]bool{
				"verbose": true,
			},
			expected: &models.SetupRequest{Verbose: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}

			cmd.Flags().String("config", "", "")
			cmd.Flags().String("root", "", "")
			cmd.Flags().String("values", "", "")
			cmd.Flags().Bool("verbose", false, "")

			for flag, value := range tt.flags {
				cmd.Flags().Set(flag, value)
			}
			for flag, value := range tt.boolFlags {
				if value {
					cmd.Flags().Set(flag, "true")
				}
			}

			result, err := buildRequestFromFlags(cmd)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if *result != *tt.expected {
				t.Errorf("buildRequestFromFlags() = %+v, expected %+v", *result, *tt.expected)
			}
		})
	}
}

func TestBuildRequestFromFlags_MissingFlag(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "")

	if _, err := buildRequestFromFlags(cmd); err == nil {
		t.Errorf("Expected error for an undefined flag, got nil")
	}
}

func TestPreviewCommandRequiresTarget(t *testing.T) {
	if err := previewCmd.Args(previewCmd, []string{}); err == nil {
		t.Errorf("Expected preview to require a target argument")
	}
	if err := previewCmd.Args(previewCmd, []string{"env"}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
