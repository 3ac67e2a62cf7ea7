package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPreviewNotification(t *testing.T) {
	t.Setenv("CONTACT_EMAIL_TO", "owner@example.com")

	out, err := runCmd(t, "preview", "notification", "--message", "one\ntwo")
	require.NoError(t, err)
	assert.Contains(t, out, "To: owner@example.com")
	assert.Contains(t, out, "Reply-To: ana@example.com")
	assert.Contains(t, out, "one<br>two")
}

func TestPreviewConfirmationCard(t *testing.T) {
	out, err := runCmd(t, "preview", "confirmation", "--template", "card", "--email", "bob@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "To: bob@example.com")
	assert.Contains(t, out, "<!DOCTYPE html>")
}

func TestPreviewRejectsUnknownKind(t *testing.T) {
	_, err := runCmd(t, "preview", "newsletter")
	assert.Error(t, err)
}

func TestPreviewRejectsUnknownTemplate(t *testing.T) {
	_, err := runCmd(t, "preview", "confirmation", "--template", "neon")
	assert.Error(t, err)
}
