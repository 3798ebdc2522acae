// internal/app/features/students/importcsv.go
package students

import (
	"net/http"

	studentstore "github.com/dalemusser/acadhub/internal/app/store/students"
	"github.com/dalemusser/acadhub/internal/app/system/csvutil"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/app/system/timeouts"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleImportCSV handles POST /students/import-csv. The multipart form
// carries the roster under "file" and the target branch under
// "branchId"; every imported student lands in that branch. The whole
// file is pre-scanned and nothing is inserted unless every row parses.
func (h *Handler) HandleImportCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, csvutil.MaxUploadSize)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "student CSV import")
	defer cancel()

	branchID, err := primitive.ObjectIDFromHex(r.FormValue("branchId"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Missing CSV file")
		return
	}
	defer file.Close()

	parsed, err := csvutil.ParseStudentCSV(file, csvutil.ParseOptions{MaxRows: csvutil.MaxRows})
	if err == csvutil.ErrTooManyRows {
		respond.Fail(w, http.StatusBadRequest, "Too many rows in upload")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "students: parsing roster", err, "Failed to import students")
		return
	}
	if parsed.HasErrors() {
		respond.Fail(w, http.StatusBadRequest, parsed.FormatErrors(5))
		return
	}
	if len(parsed.Rows) == 0 {
		respond.Fail(w, http.StatusBadRequest, "No rows to import")
		return
	}

	store := studentstore.New(h.DB)
	var created, skipped int
	for _, row := range parsed.Rows {
		_, err := store.Create(ctx, models.Student{
			EnrollmentNo: row.EnrollmentNo,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Email:        row.Email,
			Semester:     row.Semester,
			BranchID:     branchID,
		})
		if err == studentstore.ErrDuplicateStudent {
			skipped++
			continue
		}
		if err != nil {
			h.ErrLog.LogServerError(w, r, "students: importing roster row", err, "Failed to import students")
			return
		}
		created++
	}

	h.Log.Info("students imported",
		zap.String("branch_id", branchID.Hex()),
		zap.Int("created", created),
		zap.Int("skipped", skipped))

	respond.Data(w, map[string]int{"created": created, "skipped": skipped})
}
