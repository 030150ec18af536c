package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCrisis(t *testing.T) {
	d := NewCrisisDetector()
	tests := []struct {
		message string
		want    bool
	}{
		{"I want to end my life", true},
		{"SUICIDE", true},
		{"Sometimes I feel Hopeless about everything", true},
		{"I don't want to live like this", true},
		{"I don’t want to live like this", true},
		{"I keep thinking everyone would be better off without me", true},
		{"there is no way out", true},
		{"I had a great day", false},
		{"", false},
		{"my kill switch project shipped", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.IsCrisis(tt.message), tt.message)
	}
}

func TestCrisisResponse_MentionsResources(t *testing.T) {
	assert.Contains(t, CrisisResponse, "1-800-273-8255")
	assert.Contains(t, CrisisResponse, "741741")
	assert.Contains(t, CrisisResponse, "911")
}
