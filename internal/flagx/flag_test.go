package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "goalline.json", "-u", "http://api"},
			allowed: []string{"-c"},
			want:    []string{"-c", "goalline.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=alt.yaml", "-u", "http://api"},
			allowed: []string{"--config"},
			want:    []string{"--config=alt.yaml"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "teams"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-s"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-u", "-t", "5"},
			allowed: []string{"-u", "-t"},
			want:    []string{"-u", "-t", "5"},
		},
		{
			name:    "order and repeats preserved",
			args:    []string{"-u", "http://a", "-l", "debug", "-u", "http://b"},
			allowed: []string{"-u", "-l"},
			want:    []string{"-u", "http://a", "-l", "debug", "-u", "http://b"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, "/etc/goalline.json", ConfigFilePath([]string{"-c", "/etc/goalline.json"}))
	assert.Equal(t, "/etc/goalline.yaml", ConfigFilePath([]string{"-u", "http://x", "-config", "/etc/goalline.yaml"}))
	assert.Equal(t, "b.json", ConfigFilePath([]string{"-c", "a.json", "-config", "b.json"}))
	assert.Empty(t, ConfigFilePath([]string{"-u", "http://x"}))
}
