package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

// Classification is the JSON shape written by the CLI and the HTTP API.
type Classification struct {
	uaparser.Result
	DeviceType string `json:"device_type"`
	Bot        bool   `json:"bot"`
	Client     string `json:"client"`
}

func newClassification(ua useragent.UserAgent) Classification {
	return Classification{
		Result:     ua.Result(),
		DeviceType: ua.DeviceType(),
		Bot:        ua.IsBot(),
		Client:     ua.GetShortIdentifier(),
	}
}

// classifyStream writes one JSON line per user agent. Arguments win over
// input; without arguments every non-blank line of in is classified.
func classifyStream(c *useragent.Classifier, args []string, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	emit := func(s string) error {
		ua, err := c.Parse(s)
		if err != nil && !errors.Is(err, useragent.ErrEmptyUserAgent) {
			return err
		}
		return enc.Encode(newClassification(ua))
	}

	if len(args) > 0 {
		for _, s := range args {
			if err := emit(s); err != nil {
				return err
			}
		}
		return nil
	}

	br := bufio.NewReader(in)
	for {
		line, err := readLine(br, maxLineBytes)
		if s := strings.TrimSpace(line); s != "" {
			if err := emit(s); err != nil {
				return err
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// maxLineBytes is how much of an input line is kept. Anything past it could
// not influence the classification.
const maxLineBytes = 4 * uaparser.MaxUALength

// readLine returns the next line with at most limit bytes kept; the rest of
// an oversized line is consumed and dropped.
func readLine(br *bufio.Reader, limit int) (string, error) {
	var buf []byte
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return string(buf), err
		}
		if room := limit - len(buf); room > 0 {
			buf = append(buf, chunk[:min(room, len(chunk))]...)
		}
		if !isPrefix {
			return string(buf), nil
		}
	}
}
