/*
Copyright © 2025 abhay
*/
package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhay/bmark/internal/core"
)

func TestAddCmd_Flags(t *testing.T) {
	tests := []struct {
		name         string
		flagName     string
		defaultValue interface{}
		flagType     string
	}{
		{
			name:         "url flag has correct default",
			flagName:     "url",
			defaultValue: "",
			flagType:     "string",
		},
		{
			name:         "name flag has correct default",
			flagName:     "name",
			defaultValue: "",
			flagType:     "string",
		},
		{
			name:         "desc flag has correct default",
			flagName:     "desc",
			defaultValue: "",
			flagType:     "string",
		},
		{
			name:         "catg flag has correct default",
			flagName:     "catg",
			defaultValue: "",
			flagType:     "string",
		},
		{
			name:         "fetch-name flag has correct default",
			flagName:     "fetch-name",
			defaultValue: false,
			flagType:     "bool",
		},
		{
			name:         "fetch-timeout flag has correct default",
			flagName:     "fetch-timeout",
			defaultValue: core.DefaultFetchTimeout,
			flagType:     "duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag interface{}
			var err error

			switch tt.flagType {
			case "string":
				flag, err = addCmd.Flags().GetString(tt.flagName)
			case "bool":
				flag, err = addCmd.Flags().GetBool(tt.flagName)
			case "duration":
				flag, err = addCmd.Flags().GetDuration(tt.flagName)
			}

			if err != nil {
				t.Fatalf("Failed to get flag %s: %v", tt.flagName, err)
			}

			if flag != tt.defaultValue {
				t.Errorf("Flag %s: got %v, want %v", tt.flagName, flag, tt.defaultValue)
			}
		})
	}
}

func TestAddCmd_TagFlagRepeatable(t *testing.T) {
	tags, err := addCmd.Flags().GetStringArray("tag")
	if err != nil {
		t.Fatalf("Failed to get tag flag: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("Expected empty default tag list, got %v", tags)
	}
}

func TestAddCmd_URLRequired(t *testing.T) {
	flag := addCmd.Flags().Lookup("url")
	if flag == nil {
		t.Fatal("Expected url flag to be defined")
	}
	if flag.Annotations[cobra.BashCompOneRequiredFlag] == nil {
		t.Error("Expected url flag to be marked required")
	}
}

func TestAddCmd_FlagShortcuts(t *testing.T) {
	shorthands := map[string]string{
		"url":  "u",
		"name": "n",
		"tag":  "t",
		"desc": "d",
		"catg": "c",
	}
	for name, short := range shorthands {
		flag := addCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("Expected flag %s to be defined", name)
			continue
		}
		if flag.Shorthand != short {
			t.Errorf("Flag %s: expected shorthand %q, got %q", name, short, flag.Shorthand)
		}
	}
}

func TestAddCmd_CommandMetadata(t *testing.T) {
	if addCmd.Use != "add" {
		t.Errorf("Expected Use to be 'add', got %s", addCmd.Use)
	}

	if addCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}
}

func TestAddCmd_UsageOutput(t *testing.T) {
	var buf bytes.Buffer
	addCmd.SetOut(&buf)
	addCmd.SetErr(&buf)
	t.Cleanup(func() {
		addCmd.SetOut(nil)
		addCmd.SetErr(nil)
	})

	err := addCmd.Usage()
	if err != nil {
		t.Errorf("Usage() returned error: %v", err)
	}

	output := buf.String()
	expectedFlags := []string{"--url", "--name", "--tag", "--desc", "--catg", "--fetch-name"}
	for _, flag := range expectedFlags {
		if !bytes.Contains([]byte(output), []byte(flag)) {
			t.Errorf("Expected usage to mention %s", flag)
		}
	}
}

func TestAddCmd_InheritsDBPathFlag(t *testing.T) {
	flag := addCmd.InheritedFlags().Lookup("dbpath")
	if flag == nil {
		t.Error("Expected add command to inherit --dbpath flag from root")
	}
}

func TestAddCmd_FetchTimeoutIsDuration(t *testing.T) {
	d, err := addCmd.Flags().GetDuration("fetch-timeout")
	if err != nil {
		t.Fatalf("Failed to get fetch-timeout flag: %v", err)
	}
	if d <= 0 {
		t.Errorf("Expected positive default fetch timeout, got %v", d)
	}
	if d != 10*time.Second {
		t.Errorf("Expected 10s default fetch timeout, got %v", d)
	}
}
