package pricing

import (
	"sort"
	"strconv"
	"strings"
)

// MaxPageNumber bounds page numbers accepted by ParsePageSelection.
// Larger numbers are treated like any other malformed token.
const MaxPageNumber = 10000

// ParsePageSelection expands a page-selection expression into the ascending
// set of selected page numbers.
//
//	""  / "all"      -> empty (caller uses the document's own page count)
//	"10"             -> 1..10
//	"1-5,10,15-20"   -> union of the ranges and single pages
//
// Malformed tokens and reversed ranges are skipped silently.
func ParsePageSelection(expr string) []int {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" || expr == "all" {
		return []int{}
	}

	if n, ok := parsePage(expr); ok {
		pages := make([]int, 0, n)
		for p := 1; p <= n; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	seen := make(map[int]struct{})
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if start, end, isRange := strings.Cut(token, "-"); isRange {
			from, okFrom := parsePage(strings.TrimSpace(start))
			to, okTo := parsePage(strings.TrimSpace(end))
			if !okFrom || !okTo || from > to {
				continue
			}
			for p := from; p <= to; p++ {
				seen[p] = struct{}{}
			}
			continue
		}

		if p, ok := parsePage(token); ok {
			seen[p] = struct{}{}
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// PageCount is len(ParsePageSelection(expr)).
func PageCount(expr string) int {
	return len(ParsePageSelection(expr))
}

func parsePage(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxPageNumber {
		return 0, false
	}
	return n, true
}
