// internal/app/system/csvutil/students.go
package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dalemusser/acadhub/internal/app/system/inputval"
)

// ErrTooManyRows is returned when the file exceeds ParseOptions.MaxRows.
var ErrTooManyRows = errors.New("too many rows in upload")

// StudentCSVRow is one normalized roster row.
type StudentCSVRow struct {
	EnrollmentNo string // upper-cased
	FirstName    string
	LastName     string
	Email        string // lower-cased
	Semester     int
}

// RowError describes one rejected row. Line is 1-based and counts data
// rows after any header.
type RowError struct {
	Line   int
	Reason string
	Raw    []string
}

// ParseResult holds the accepted rows and any per-row rejections.
type ParseResult struct {
	Rows   []StudentCSVRow
	Errors []RowError
}

func (r *ParseResult) HasErrors() bool { return len(r.Errors) > 0 }

// FormatErrors renders up to maxShow rejections as a plain-text message
// suitable for a JSON error body. Returns "" when there are none.
func (r *ParseResult) FormatErrors(maxShow int) string {
	if len(r.Errors) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d row(s) are invalid.", len(r.Errors))
	n := len(r.Errors)
	if maxShow > 0 && n > maxShow {
		n = maxShow
	}
	for i := 0; i < n; i++ {
		e := r.Errors[i]
		fmt.Fprintf(&b, " Line %d: %s.", e.Line, e.Reason)
	}
	if rest := len(r.Errors) - n; rest > 0 {
		fmt.Fprintf(&b, " (and %d more)", rest)
	}
	return b.String()
}

// ParseOptions controls parsing limits.
type ParseOptions struct {
	MaxRows int // 0 means unlimited
}

func DefaultParseOptions() ParseOptions { return ParseOptions{} }

// ParseStudentCSV reads a student roster with columns
//
//	Enrollment No, First Name, Last Name, Email, Semester
//
// An optional header row and a UTF-8 BOM are tolerated. Blank rows are
// skipped. Rows never touch the database here; callers pre-scan the
// whole file and only insert when HasErrors is false.
func ParseStudentCSV(r io.Reader, opts ParseOptions) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &ParseResult{}
	seenEnroll := map[string]bool{}
	seenEmail := map[string]bool{}

	line := 0
	first := true
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if first {
			first = false
			if len(rec) > 0 {
				rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
			}
			if isHeaderRow(rec) {
				continue
			}
		}
		if isBlankRow(rec) {
			continue
		}
		line++
		if opts.MaxRows > 0 && line > opts.MaxRows {
			return nil, ErrTooManyRows
		}

		row, reason := normalizeRow(rec)
		if reason == "" {
			if seenEnroll[row.EnrollmentNo] {
				reason = "duplicate enrollment number in file"
			} else if seenEmail[row.Email] {
				reason = "duplicate email in file"
			}
		}
		if reason != "" {
			result.Errors = append(result.Errors, RowError{Line: line, Reason: reason, Raw: rec})
			continue
		}
		seenEnroll[row.EnrollmentNo] = true
		seenEmail[row.Email] = true
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func isHeaderRow(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	head := strings.ToLower(strings.TrimSpace(rec[0]))
	return head == "enrollment no" || head == "enrollment" || head == "enrollment_no"
}

func isBlankRow(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func normalizeRow(rec []string) (StudentCSVRow, string) {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	row := StudentCSVRow{
		EnrollmentNo: strings.ToUpper(field(0)),
		FirstName:    field(1),
		LastName:     field(2),
		Email:        strings.ToLower(field(3)),
	}
	if row.EnrollmentNo == "" {
		return row, "missing enrollment number"
	}
	if row.FirstName == "" {
		return row, "missing first name"
	}
	if row.Email == "" {
		return row, "missing email"
	}
	if !inputval.IsValidEmail(row.Email) {
		return row, "invalid email"
	}
	sem, err := strconv.Atoi(field(4))
	if err != nil || sem < 1 || sem > 8 {
		return row, "semester must be a number from 1 to 8"
	}
	row.Semester = sem
	return row, ""
}
