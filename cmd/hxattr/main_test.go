package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		expect string
	}{
		{"simple trigger", []string{"trigger", "reload"}, "reload\n"},
		{"trigger list", []string{"trigger", "reload", "clearForm"}, "reload, clearForm\n"},
		{
			"detailed trigger",
			[]string{"trigger", "reload", `update={"count": 5}`},
			`{"reload":null,"update":{"count":5}}` + "\n",
		},
		{"bare location", []string{"location", "/dashboard"}, "/dashboard\n"},
		{
			"location with options",
			[]string{"location", "--swap", "innerHTML", "--target", "#main", "/dashboard"},
			`{"path":"/dashboard","target":"#main","swap":"innerHTML"}` + "\n",
		},
		{
			"location with values",
			[]string{"location", "--values", `{"id":1}`, "--select", "#c", "/p"},
			`{"path":"/p","values":{"id":1},"select":"#c"}` + "\n",
		},
		{"version", []string{"version"}, "hxattr version " + version + "\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			require.NoError(t, run(tt.args, &out))
			assert.Equal(t, tt.expect, out.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no command", nil, true},
		{"unknown command", []string{"bogus"}, true},
		{"trigger without events", []string{"trigger"}, true},
		{"trigger with bad json", []string{"trigger", "x={"}, false},
		{"location without path", []string{"location"}, true},
		{"location with two paths", []string{"location", "/a", "/b"}, true},
		{"location with unknown flag", []string{"location", "--nope", "/a"}, true},
		{"location with bad values", []string{"location", "--values", "nope", "/a"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			err := run(tt.args, &out)
			require.Error(t, err)
			assert.Equal(t, tt.usage, errors.Is(err, errUsage))
		})
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, run([]string{"help"}, &out))
	assert.Contains(t, out.String(), "Usage:")
}
