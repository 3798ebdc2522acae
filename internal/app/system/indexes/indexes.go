// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureBranches(ctx, db); err != nil {
		problems = append(problems, "branches: "+err.Error())
	}
	if err := ensureSubjects(ctx, db); err != nil {
		problems = append(problems, "subjects: "+err.Error())
	}
	if err := ensureStudents(ctx, db); err != nil {
		problems = append(problems, "students: "+err.Error())
	}
	if err := ensureFaculty(ctx, db); err != nil {
		problems = append(problems, "faculty: "+err.Error())
	}
	if err := ensureAdmins(ctx, db); err != nil {
		problems = append(problems, "admins: "+err.Error())
	}
	if err := ensureExams(ctx, db); err != nil {
		problems = append(problems, "exams: "+err.Error())
	}
	if err := ensureMarks(ctx, db); err != nil {
		problems = append(problems, "marks: "+err.Error())
	}
	if err := ensureNotices(ctx, db); err != nil {
		problems = append(problems, "notices: "+err.Error())
	}
	if err := ensureTimetables(ctx, db); err != nil {
		problems = append(problems, "timetables: "+err.Error())
	}
	if err := ensureMaterials(ctx, db); err != nil {
		problems = append(problems, "materials: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureBranches(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("branches")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_branches_nameci"),
		},
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_branches_code"),
		},
	})
}

func ensureSubjects(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("subjects")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Code is unique within a branch, not globally.
		{
			Keys: bson.D{
				{Key: "branch_id", Value: 1},
				{Key: "code", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_subjects_branch_code"),
		},
		{
			Keys: bson.D{
				{Key: "branch_id", Value: 1},
				{Key: "semester", Value: 1},
				{Key: "name_ci", Value: 1},
			},
			Options: options.Index().SetName("idx_subjects_branch_sem_nameci"),
		},
	})
}

func ensureStudents(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("students")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_students_email"),
		},
		{
			Keys:    bson.D{{Key: "enrollment_no", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_students_enrollment"),
		},
		// Branch listings sorted by name; the dashboard's branch filter
		// also hits the prefix.
		{
			Keys: bson.D{
				{Key: "branch_id", Value: 1},
				{Key: "name_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_students_branch_nameci_id"),
		},
		{
			Keys:    bson.D{{Key: "aspiring", Value: 1}},
			Options: options.Index().SetName("idx_students_aspiring"),
		},
	})
}

func ensureFaculty(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("faculty")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_faculty_email"),
		},
		{
			Keys: bson.D{
				{Key: "name_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_faculty_nameci_id"),
		},
	})
}

func ensureAdmins(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("admins")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_admins_email"),
		},
	})
}

func ensureExams(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("exams")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "exam_type", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("idx_exams_type_date"),
		},
	})
}

func ensureMarks(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("marks")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One score per (student, exam, subject).
		{
			Keys: bson.D{
				{Key: "student_id", Value: 1},
				{Key: "exam_id", Value: 1},
				{Key: "subject_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_marks_student_exam_subject"),
		},
		{
			Keys:    bson.D{{Key: "exam_id", Value: 1}},
			Options: options.Index().SetName("idx_marks_exam"),
		},
		// Dashboard date-range filter scans created_at.
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_marks_created"),
		},
	})
}

func ensureNotices(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("notices")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "audience", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_notices_audience_created"),
		},
	})
}

func ensureTimetables(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("timetables")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "branch_id", Value: 1},
				{Key: "semester", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_timetables_branch_sem"),
		},
	})
}

func ensureMaterials(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("materials")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "subject_id", Value: 1},
				{Key: "type", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_materials_subject_type_created"),
		},
		{
			Keys: bson.D{
				{Key: "branch_id", Value: 1},
				{Key: "semester", Value: 1},
			},
			Options: options.Index().SetName("idx_materials_branch_sem"),
		},
	})
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := a != nil && *a
	bv := b != nil && *b
	return av == bv
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	existing, err := listIndexes(ctx, coll)
	if err != nil {
		return err
	}

	var errs []string
	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[desiredSig]; ok && sameBoolPtr(desiredUnique, ex.Unique) {
			zap.L().Debug("reusing existing index",
				zap.String("collection", coll.Name()),
				zap.String("name", ex.Name),
				zap.String("keys", desiredSig))
			continue
		} else if ok {
			// Options mismatch (e.g. upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index created",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func listIndexes(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	existing := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		// A collection that does not exist yet has no indexes to list.
		return existing, nil
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing, cur.Err()
}
