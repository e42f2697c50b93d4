package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Args(t *testing.T) {
	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{"-log-level", "ERROR", "aaab", "zzzz"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "'a' --> 0.75\n'b' --> 0.25\n")
	assert.Contains(t, out, "Huffman encoding map for text: \n'a' --> 0\n'b' --> 1\n")
	assert.Contains(t, out, "Encoded text: 0001\n")
	assert.Contains(t, out, "Encoded text: 0000\n")
	assert.Contains(t, out, "Decoded text: aaab\n")
	assert.Contains(t, out, "Decoded text: zzzz\n")
	assert.NotContains(t, out, "Please enter a string")
}

func TestRun_Prompt(t *testing.T) {
	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{"-log-level", "ERROR"}, strings.NewReader("abcabcabc\n"), &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "Welcome to my Huffman Encoding Program!\n"))
	assert.Contains(t, out, "Original text: abcabcabc\n")
	assert.Contains(t, out, "Original text length: 72 - 144 bits\n")
	assert.Contains(t, out, "Encoded text: 010010100101001\n")
	assert.Contains(t, out, "Encoded text length: 15\n")
	assert.Contains(t, out, "Decoded text: abcabcabc\n")
}

func TestRun_EmptyInput(t *testing.T) {
	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{"-log-level", "ERROR"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Encoded text length: 0\n")
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{"-workers", "none"}, strings.NewReader(""), &stdout, &stderr)
	assert.Error(t, err)
}
