package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    Help
		wantErr string
	}{
		{give: "usage"},
		{give: "default"},
		{give: "config"},
		{give: ""},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("topic="+tt.give.String(), func(t *testing.T) {
			t.Parallel()

			err := tt.give.Write(io.Discard)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelp_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want Help
	}{
		{give: "true", want: DefaultHelp},
		{give: "Config", want: "config"},
		{give: " usage ", want: UsageHelp},
	}

	for _, tt := range tests {
		var h Help
		assert.NoError(t, h.Set(tt.give))
		assert.Equal(t, tt.want, h, "Set(%q)", tt.give)
		assert.Equal(t, tt.want, h.Get())
	}
}

func TestFirstLineOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "USAGE: dox2md\n", firstLineOf("USAGE: dox2md\nmore\n"))
	assert.Equal(t, "no newline", firstLineOf("no newline"))
}
