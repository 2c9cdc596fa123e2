package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteTrace writes ops in the text trace format: the number of operations
// on the first line, then one operation per line ("insert <v>", "remove" or
// "peek").
func WriteTrace(w io.Writer, ops []Op) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(ops))
	for _, op := range ops {
		fmt.Fprintln(bw, op)
	}
	return bw.Flush()
}

func parseCount(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("error while parsing first line: missing operation count")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("error while parsing first line: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("error while parsing first line: negative operation count %d", n)
	}
	return n, nil
}

func parseOp(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, fmt.Errorf("empty operation")
	}

	switch fields[0] {
	case "insert":
		if len(fields) != 2 {
			return Op{}, fmt.Errorf("insert takes exactly one value")
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: Insert, Value: v}, nil
	case "remove", "peek":
		if len(fields) != 1 {
			return Op{}, fmt.Errorf("%s takes no value", fields[0])
		}
		if fields[0] == "remove" {
			return Op{Kind: Remove}, nil
		}
		return Op{Kind: Peek}, nil
	default:
		return Op{}, fmt.Errorf("unknown operation %q", fields[0])
	}
}

// ParseTrace reads a trace written by WriteTrace. Blank lines are skipped.
func ParseTrace(r io.Reader) ([]Op, error) {
	scanner := bufio.NewScanner(r)
	n, err := parseCount(scanner)
	if err != nil {
		return nil, err
	}

	// n comes from the file; the count check below enforces it
	ops := make([]Op, 0, min(n, 1<<16))
	line := 1
	for scanner.Scan() {
		line++
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		op, err := parseOp(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("error while parsing line %d: %w", line, err)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ops) != n {
		return nil, fmt.Errorf("trace announces %d operations but holds %d", n, len(ops))
	}
	return ops, nil
}

func LoadTrace(filename string) ([]Op, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseTrace(file)
}
