package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pointHex     = "0101000000000000000000F03F000000000000F03F"
	sridPointHex = "0101000020E6100000000000000000F03F000000000000F03F"
)

func execute(t *testing.T, stdin string, args ...string) (string, *logtest.Hook, error) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	cmd := newRootCmd(logger)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), hook, err
}

func TestDescribeArgs(t *testing.T) {
	out, _, err := execute(t, "", pointHex, sridPointHex)
	require.NoError(t, err)
	assert.Contains(t, out, "1: POINT(1 vertices) dim=0 closed=true")
	assert.Contains(t, out, "2: SRID=4326;POINT(1 vertices)")
	assert.Contains(t, out, "bbox=(1 1, 1 1)")
}

func TestDescribeStdinAndFile(t *testing.T) {
	out, _, err := execute(t, pointHex+"\n\n"+sridPointHex+"\n")
	require.NoError(t, err)
	assert.Contains(t, out, "2: SRID=4326")

	path := filepath.Join(t.TempDir(), "input.hex")
	require.NoError(t, os.WriteFile(path, []byte(pointHex+"\n"), 0o600))
	out, _, err = execute(t, "", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1: POINT")
}

func TestTreeAndReencode(t *testing.T) {
	// GEOMETRYCOLLECTION(POINT(1 1))
	gc := "010700000001000000" + pointHex
	out, _, err := execute(t, "", "--tree", "--reencode", "xdr", gc)
	require.NoError(t, err)
	assert.Contains(t, out, "GEOMETRYCOLLECTION(1 vertices)")
	assert.Contains(t, out, "     POINT(1 vertices)")
	assert.Contains(t, out, "00000000070000000100000000013FF0000000000000")

	out, _, err = execute(t, "", "--reencode", "ndr", "--extended", sridPointHex)
	require.NoError(t, err)
	assert.Contains(t, out, sridPointHex)
}

func TestFailuresAreReported(t *testing.T) {
	// LINESTRING with a single point.
	bad := "010200000001000000000000000000F03F000000000000F03F"
	_, hook, err := execute(t, "", pointHex, bad, "zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 inputs failed")

	var errs int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			errs++
		}
	}
	assert.Equal(t, 2, errs)

	_, _, err = execute(t, "", "--lenient", bad)
	assert.NoError(t, err)
}
