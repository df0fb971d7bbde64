package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// searchTop is the page size used when searching interactively for
// candidate ids. Results beyond it are never fetched.
const searchTop = 100

// promptLine prints a prompt and reads one line of input, trimmed of
// surrounding whitespace. EOF counts as an empty answer so that a
// closed stdin lands on the safe (abort) side of every question.
func promptLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// splitIDList splits comma-separated ids, dropping blank entries.
// Duplicates pass through; the service decides what they mean.
func splitIDList(input string) []string {
	var ids []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

// selectByPosition resolves a selection answer against the listed ids.
// The literal 'all' keeps everything; otherwise the answer is read as
// comma-separated 1-based positions into the list. Positions outside
// the list are skipped silently, duplicates are kept, and anything
// non-numeric is an error.
func selectByPosition(ids []string, selection string) ([]string, error) {
	if strings.EqualFold(selection, "all") {
		return ids, nil
	}

	var picked []string
	for _, token := range strings.Split(selection, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		position, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: %w", token, err)
		}
		if position >= 1 && position <= len(ids) {
			picked = append(picked, ids[position-1])
		}
	}
	return picked, nil
}

// printResponseBody shows a delete response body, pretty-printed when
// it is valid JSON and as raw text otherwise.
func printResponseBody(out io.Writer, body []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Fprintln(out, "Response (non-json):", string(body))
		return
	}
	fmt.Fprintln(out, "Response:", pretty.String())
}
