package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lidario/potree/cloud"
)

// writePointsText writes result as a comma-separated text file: a header
// line naming every column, one number per column, followed by one row per
// point in Position order. Multi-component attributes (position, rgb) are
// split into name.x/name.y/name.z-style columns so the text format stays
// one column per number.
func writePointsText(path string, result cloud.Cloud) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	header := []string{"position.x", "position.y", "position.z"}
	if len(result.RGB) > 0 {
		header = append(header, "rgb.r", "rgb.g", "rgb.b")
	}
	header = append(header, result.OtherOrder...)
	if _, err := w.WriteString(strings.Join(header, ",") + "\n"); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for i := 0; i < result.Points; i++ {
		row = row[:0]

		p := result.Position[i]
		row = append(row,
			strconv.FormatFloat(p[0], 'f', -1, 64),
			strconv.FormatFloat(p[1], 'f', -1, 64),
			strconv.FormatFloat(p[2], 'f', -1, 64),
		)

		if len(result.RGB) > 0 {
			c := result.RGB[i]
			row = append(row,
				strconv.FormatFloat(c[0], 'f', -1, 64),
				strconv.FormatFloat(c[1], 'f', -1, 64),
				strconv.FormatFloat(c[2], 'f', -1, 64),
			)
		}

		for _, name := range result.OtherOrder {
			row = append(row, formatColumnValue(result.Other[name], i))
		}

		if _, err := w.WriteString(strings.Join(row, ",") + "\n"); err != nil {
			return err
		}
	}

	return w.Flush()
}

// formatColumnValue formats the i-th element of a column produced by the
// cloud package's generic attribute decoder.
func formatColumnValue(column any, i int) string {
	switch col := column.(type) {
	case []uint8:
		return strconv.FormatUint(uint64(col[i]), 10)
	case []uint16:
		return strconv.FormatUint(uint64(col[i]), 10)
	case []uint32:
		return strconv.FormatUint(uint64(col[i]), 10)
	case []int16:
		return strconv.FormatInt(int64(col[i]), 10)
	case []float32:
		return strconv.FormatFloat(float64(col[i]), 'f', -1, 32)
	case []float64:
		return strconv.FormatFloat(col[i], 'f', -1, 64)
	default:
		return ""
	}
}
