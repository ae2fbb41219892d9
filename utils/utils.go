package utils

import (
	"fmt"
	"io"
	"strings"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

const horizontalLineWidth = 40

// PrintHorizontalLine prints a horizontal line with symbol `=`
func PrintHorizontalLine(output io.Writer) {
	fmt.Fprintln(output, strings.Repeat("=", horizontalLineWidth))
}
