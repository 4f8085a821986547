// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import "strings"

// sniffSample is the number of leading bytes examined for delimiter
// detection.
const sniffSample = 1024

// Sniff picks the delimiter by character frequency in the sample: tab
// wins if strictly more frequent than comma, else semicolon if strictly
// more frequent than comma, else comma.
func Sniff(sample string) rune {
	commas := strings.Count(sample, ",")
	if strings.Count(sample, "\t") > commas {
		return '\t'
	}
	if strings.Count(sample, ";") > commas {
		return ';'
	}
	return ','
}
