package store

import (
	"bytes"
	"strconv"
	"strings"

	"tally/internal/domain"
)

// Counters are persisted one record per line as "name|value", value in base 10.
// Every record, including the last, ends with '\n'. An empty collection is an empty file.
const fieldSep = "|"

// recordFormat identifies how a counters file was laid out when it was read.
type recordFormat int

const (
	formatEmpty recordFormat = iota
	// formatLines is the canonical one-record-per-line layout.
	formatLines
	// formatPairs is the legacy layout: a name line followed by a value line.
	formatPairs
)

func (f recordFormat) String() string {
	switch f {
	case formatLines:
		return "lines"
	case formatPairs:
		return "pairs"
	default:
		return "empty"
	}
}

// skip describes a record dropped while decoding.
type skip struct {
	line   int // 1-based
	reason string
}

// encodeRecords renders counters in file order.
func encodeRecords(counters []domain.Counter) []byte {
	var buf bytes.Buffer
	for _, c := range counters {
		buf.WriteString(string(c.Name))
		buf.WriteString(fieldSep)
		buf.WriteString(strconv.FormatInt(c.Value, 10))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// decodeRecords parses data leniently. Malformed records are reported in skips and
// never abort decoding. When no line parses in the canonical layout the legacy
// name/value pair layout is tried instead.
func decodeRecords(data []byte) ([]domain.Counter, []skip, recordFormat) {
	lines := splitLines(data)
	if len(lines) == 0 {
		return nil, nil, formatEmpty
	}

	counters, skips := decodeLines(lines)
	if len(counters) > 0 || allBlank(lines) {
		return counters, skips, formatLines
	}

	pairs, pairSkips := decodePairs(lines)
	if len(pairs) == 0 {
		// Neither layout yielded anything; report against the canonical one.
		return nil, skips, formatLines
	}
	return pairs, pairSkips, formatPairs
}

func decodeLines(lines []string) ([]domain.Counter, []skip) {
	var (
		out   []domain.Counter
		skips []skip
	)
	for i, line := range lines {
		parts := strings.Split(line, fieldSep)
		if len(parts) != 2 {
			skips = append(skips, skip{line: i + 1, reason: "expected exactly two fields"})
			continue
		}
		c, reason := parseRecord(parts[0], parts[1])
		if reason != "" {
			skips = append(skips, skip{line: i + 1, reason: reason})
			continue
		}
		out = append(out, c)
	}
	return out, skips
}

func decodePairs(lines []string) ([]domain.Counter, []skip) {
	var (
		out   []domain.Counter
		skips []skip
	)
	for i := 0; i < len(lines); i += 2 {
		if i+1 >= len(lines) {
			skips = append(skips, skip{line: i + 1, reason: "name without value line"})
			break
		}
		name := lines[i]
		if strings.ContainsAny(name, fieldSep) {
			// Cannot be rewritten in the canonical layout without changing the name.
			skips = append(skips, skip{line: i + 1, reason: "name contains field separator"})
			continue
		}
		c, reason := parseRecord(name, lines[i+1])
		if reason != "" {
			skips = append(skips, skip{line: i + 1, reason: reason})
			continue
		}
		out = append(out, c)
	}
	return out, skips
}

func parseRecord(name, value string) (domain.Counter, string) {
	if strings.TrimSpace(name) == "" {
		return domain.Counter{}, "blank name"
	}
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return domain.Counter{}, "value is not a 64-bit integer"
	}
	return domain.Counter{Name: domain.CounterName(name), Value: v}, ""
}

// splitLines splits on '\n', tolerating CRLF and a missing final newline.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func allBlank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
