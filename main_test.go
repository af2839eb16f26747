package main

import (
	"testing"

	"booth-extractor/activation"

	"github.com/stretchr/testify/assert"
)

func TestResolveAction(t *testing.T) {
	tests := []struct {
		name     string
		mode     activation.Mode
		action   string
		expected string
		wantErr  bool
	}{
		{"list default", activation.List, "", actionAll, false},
		{"list current", activation.List, actionCurrent, actionCurrent, false},
		{"list all", activation.List, actionAll, actionAll, false},
		{"list item rejected", activation.List, actionItem, "", true},
		{"item default", activation.Item, "", actionItem, false},
		{"item all rejected", activation.Item, actionAll, "", true},
		{"inert", activation.Inert, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveAction(tt.mode, tt.action)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
