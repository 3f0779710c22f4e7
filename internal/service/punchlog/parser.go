// Package punchlog parses raw punch-log exports from biometric time clocks.
//
// A log is line-oriented UTF-8, one swipe per line, fields separated by tabs
// or runs of two or more spaces. The timestamp keeps its single interior
// space ("date time"), which is why single spaces are not separators.
package punchlog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/punchlab/punchclock-backend-go/internal/domain/punch"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/civiltime"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/validator"
)

// fieldSep splits on tab runs or 2+ consecutive spaces. A single space inside
// the timestamp token survives the split intentionally.
var fieldSep = regexp.MustCompile(`\t+|[ ]{2,}`)

// Defaults for trailing optional fields when missing or non-numeric.
const (
	defaultVerifyType = 1
	defaultInOutFlag  = 0
	defaultWorkCode   = 1
	defaultReserved   = 0
)

// Parser turns punch-log lines into punch events. The wall-clock digits in
// the file are interpreted in a fixed civil offset, never UTC and never the
// process timezone.
type Parser struct {
	offset string
	logger *slog.Logger
}

func NewParser(civilOffset string, logger *slog.Logger) (*Parser, error) {
	if !validator.IsValidUTCOffset(civilOffset) {
		return nil, fmt.Errorf("invalid civil offset %q, want +HH:MM or -HH:MM", civilOffset)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{offset: civilOffset, logger: logger}, nil
}

// ParseLine parses one line into an event. The second return is false when
// the line is empty or malformed; malformed lines are dropped, not fatal.
func (p *Parser) ParseLine(line string) (punch.Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return punch.Event{}, false
	}

	tokens := fieldSep.Split(line, -1)
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	employeeID, err := strconv.Atoi(tokens[0])
	if err != nil || employeeID <= 0 {
		p.logger.Warn("skipping punch line: bad employee id", "token", tokens[0])
		return punch.Event{}, false
	}

	if len(tokens) < 2 {
		p.logger.Warn("skipping punch line: no timestamp", "employee_id", employeeID)
		return punch.Event{}, false
	}

	// Two physical layouts exist in the wild: date and time as one token, or
	// split into two adjacent tokens. A time component always has a colon.
	stamp := tokens[1]
	rest := 2
	if !strings.Contains(tokens[1], ":") {
		if len(tokens) < 3 {
			p.logger.Warn("skipping punch line: date without time", "employee_id", employeeID)
			return punch.Event{}, false
		}
		stamp = tokens[1] + " " + tokens[2]
		rest = 3
	}

	ts, err := time.Parse(civiltime.StampLayout, stamp+" "+p.offset)
	if err != nil {
		p.logger.Warn("skipping punch line: unparseable timestamp", "employee_id", employeeID, "timestamp", stamp)
		return punch.Event{}, false
	}

	return punch.Event{
		EmployeeID: employeeID,
		Timestamp:  ts,
		VerifyType: intAt(tokens, rest, defaultVerifyType),
		InOutFlag:  intAt(tokens, rest+1, defaultInOutFlag),
		WorkCode:   intAt(tokens, rest+2, defaultWorkCode),
		Reserved:   intAt(tokens, rest+3, defaultReserved),
	}, true
}

// Parse streams r line by line and collects the events that parse. Memory is
// bounded to one in-flight line. Returns punch.ErrNoValidRecords when the
// whole input produced nothing usable.
func (p *Parser) Parse(ctx context.Context, r io.Reader) ([]punch.Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var events []punch.Event
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if ev, ok := p.ParseLine(scanner.Text()); ok {
			events = append(events, ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch log: %w", err)
	}

	if len(events) == 0 {
		return nil, punch.ErrNoValidRecords
	}

	return events, nil
}

func intAt(tokens []string, i, fallback int) int {
	if i >= len(tokens) {
		return fallback
	}
	n, err := strconv.Atoi(tokens[i])
	if err != nil {
		return fallback
	}
	return n
}
