package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"digital-zoo/internal/domain/zoo"
	"digital-zoo/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		flagURL = ""
		flagConfig = ""
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_NoArgsPrintsCanonicalReport(t *testing.T) {
	var want bytes.Buffer
	zoo.RunScenario(&want)

	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
	assert.True(t, strings.HasPrefix(out, "All animals making sounds:\nThor ROARS!\n"))
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, _, err := execute(t, "unexpected")
	assert.Error(t, err)
}

func TestSeed_InMemory(t *testing.T) {
	t.Setenv("ZOO_DB_DSN", "")
	t.Setenv("DB_DSN", "")

	out, _, err := execute(t, "seed")
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, "admitted "))
	assert.Contains(t, out, "Kali TRUMPETS!\n")
	assert.Contains(t, out, "Name: Kali\nAge: 10 years old\n")
}

func TestSeed_UnreachableDSNFails(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("ZOO_DB_DSN", "postgres://nobody:x@127.0.0.1:1/none?connect_timeout=1")

	out, stderr, err := execute(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open postgres")
	assert.NotContains(t, out, "admitted ")
	assert.NotContains(t, stderr, "animal admitted")
}

func TestServe_UnreachableDSNFails(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("ZOO_DB_DSN", "postgres://nobody:x@127.0.0.1:1/none?connect_timeout=1")

	_, _, err := execute(t, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open postgres")
}

func TestRemote_SoundsAndList(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	_, _, err := execute(t, "remote", "sounds", "--url", ts.URL)
	require.NoError(t, err)

	out, _, err := execute(t, "remote", "list", "--url", ts.URL)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = execute(t, "remote", "report", "--url", ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "All animals making sounds:\n\nAnimal Information:\n", out)
}

func TestRemote_BadURL(t *testing.T) {
	_, _, err := execute(t, "remote", "sounds", "--url", "::not-a-url")
	assert.Error(t, err)
}
