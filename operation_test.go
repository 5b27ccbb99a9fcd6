// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOperation(t *testing.T) {
	tests := []struct {
		name                       string
		top, search, kill, monitor bool
		targeted                   bool
		want                       op
		fails                      bool
	}{
		{name: "top", top: true, want: opTop},
		{name: "top ignores target", top: true, targeted: true, want: opTop},
		{name: "target alone", targeted: true, want: opSearch},
		{name: "search", search: true, targeted: true, want: opSearch},
		{name: "kill", kill: true, targeted: true, want: opKill},
		{name: "monitor", monitor: true, targeted: true, want: opMonitor},
		{name: "nothing", fails: true},
		{name: "kill without target", kill: true, fails: true},
		{name: "two operations", kill: true, monitor: true, targeted: true, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectOperation(tt.top, tt.search, tt.kill, tt.monitor, tt.targeted)
			if tt.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperationNames(t *testing.T) {
	assert.Equal(t, "top", opTop.String())
	assert.Equal(t, "monitor", opMonitor.String())
}
