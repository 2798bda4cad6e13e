package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestDemoCmd_PrintsChart(t *testing.T) {
	out, err := executeRoot(t, "demo")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "NFL depth chart demo for Team Awesome\n"), out)
	require.Contains(t, out, "QB backups for Tom Brady:\n(#11, John Cena)\n")
	require.Contains(t, out, "LS – (#13, Mike Tyson), (#87, Travis Kelce)\n")
}

func TestDemoCmd_TeamFlag(t *testing.T) {
	out, err := executeRoot(t, "demo", "--team", "Bengals")
	require.NoError(t, err)
	require.Contains(t, out, "demo for Bengals")
}

func TestDemoCmd_RejectsArgs(t *testing.T) {
	_, err := executeRoot(t, "demo", "extra")
	require.Error(t, err)
}

func TestServeCmd_InvalidConfig(t *testing.T) {
	t.Setenv("APP_ENV", "qa")

	_, err := executeRoot(t, "serve")
	require.Error(t, err)
}
