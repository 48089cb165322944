package main

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		set     bool
		def     log.Level
		want    log.Level
		wantErr bool
	}{
		{"unset keeps debug default", "info", false, log.DebugLevel, log.DebugLevel, false},
		{"unset keeps info default", "info", false, log.InfoLevel, log.InfoLevel, false},
		{"explicit warn", "warn", true, log.DebugLevel, log.WarnLevel, false},
		{"explicit info overrides debug", "info", true, log.DebugLevel, log.InfoLevel, false},
		{"unknown falls back", "loud", true, log.DebugLevel, log.DebugLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := logLevel(tc.flag, tc.set, tc.def)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("level = %v, want %v", got, tc.want)
			}
		})
	}
}
