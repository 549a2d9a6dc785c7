package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readValues returns args, or the whitespace separated tokens of r when
// args is empty.
func readValues(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var values []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		values = append(values, sc.Text())
	}
	return values, sc.Err()
}

// readFloats is readValues followed by float parsing. "nan" and "NaN" are
// accepted as missing values.
func readFloats(args []string, r io.Reader) ([]float64, error) {
	values, err := readValues(args, r)
	if err != nil {
		return nil, err
	}
	x := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		x[i] = f
	}
	return x, nil
}

func formatFloat(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func formatFloats(x []float64, precision int) string {
	parts := make([]string, len(x))
	for i, f := range x {
		parts[i] = formatFloat(f, precision)
	}
	return strings.Join(parts, " ")
}
