package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-a", "localhost"},
			names: []string{"c", "config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "double dash with equals",
			args:  []string{"--config=alt.json", "-a", "localhost"},
			names: []string{"c", "config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "order is preserved",
			args:  []string{"-d", "dsn", "-x", "1", "-a", ":9000"},
			names: []string{"a", "d"},
			want:  []string{"-d", "dsn", "-a", ":9000"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "flag at end without value",
			args:  []string{"-c"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "next argument is another flag",
			args:  []string{"-c", "-w", "5"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "lone dashes are not flags",
			args:  []string{"-", "--", "-a", "x"},
			names: []string{"a"},
			want:  []string{"-a", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.names))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFile([]string{"-a", ":8080", "-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigFile([]string{"--config=b.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-a", ":8080"}))
}
