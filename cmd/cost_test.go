package cmd

import (
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
)

func TestCostCmd(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "person cost",
			args: []string{"-type", "person_cost", "-salary", "9000", "-people", "2", "-days", "30", "-margin", "0"},
			want: "INR 18,000\n",
		},
		{
			name: "service cost",
			args: []string{"-type", "service_cost", "-cpu", "50", "-users", "120", "-days", "15", "-margin", "20"},
			want: "INR 3,600\n",
		},
		{
			name: "direct cost",
			args: []string{"-type", "direct_cost", "-cpm", "3000", "-days", "30", "-margin", "10"},
			want: "INR 3,300\n",
		},
		{
			name: "large amount",
			args: []string{"-type", "direct_cost", "-cpm", "1234567", "-days", "30"},
			want: "INR 12,34,567\n",
		},
		{
			name: "rounded to paise",
			args: []string{"-type", "direct_cost", "-cpm", "100", "-days", "1"},
			want: "INR 3.33\n",
		},
		{
			name: "missing numbers read as zero",
			args: []string{"-type", "person_cost", "-salary", "9000"},
			want: "INR 0\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := setupApp(t)
			status := execute(t, &costCmd{}, tc.args...)
			assert.Equal(t, subcommands.ExitSuccess, status)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestCostCmd_Currency(t *testing.T) {
	out := setupApp(t)
	t.Setenv(EnvCurrency, "EUR")
	status := execute(t, &costCmd{}, "-type", "direct_cost", "-cpm", "3000", "-days", "30")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "EUR 3,000\n", out.String())

	out.Reset()
	*currencyFlag = "XYZ"
	status = execute(t, &costCmd{}, "-type", "direct_cost", "-cpm", "3000", "-days", "30")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Empty(t, out.String())
}

func TestCostCmd_UsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"missing type", []string{"-cpm", "3000"}},
		{"unknown type", []string{"-type", "other_cost"}},
		{"field of another category", []string{"-type", "person_cost", "-cpm", "3000"}},
		{"extra arguments", []string{"-type", "direct_cost", "extra"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := setupApp(t)
			status := execute(t, &costCmd{}, tc.args...)
			assert.Equal(t, subcommands.ExitUsageError, status)
			assert.Empty(t, out.String())
		})
	}
}
