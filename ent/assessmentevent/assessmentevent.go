// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTargetRole holds the string denoting the target_role field in the database.
	FieldTargetRole = "target_role"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldReadinessLevel holds the string denoting the readiness_level field in the database.
	FieldReadinessLevel = "readiness_level"
	// FieldMissingCount holds the string denoting the missing_count field in the database.
	FieldMissingCount = "missing_count"
	// FieldNiceToHaveCount holds the string denoting the nice_to_have_count field in the database.
	FieldNiceToHaveCount = "nice_to_have_count"
	// FieldRoadmapHours holds the string denoting the roadmap_hours field in the database.
	FieldRoadmapHours = "roadmap_hours"
	// FieldRoadmapSource holds the string denoting the roadmap_source field in the database.
	FieldRoadmapSource = "roadmap_source"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTargetRole,
	FieldOverallScore,
	FieldReadinessLevel,
	FieldMissingCount,
	FieldNiceToHaveCount,
	FieldRoadmapHours,
	FieldRoadmapSource,
	FieldDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TargetRoleValidator is a validator for the "target_role" field. It is called by the builders before save.
	TargetRoleValidator func(string) error
	// DefaultOverallScore holds the default value on creation for the "overall_score" field.
	DefaultOverallScore float64
	// DefaultReadinessLevel holds the default value on creation for the "readiness_level" field.
	DefaultReadinessLevel string
	// DefaultMissingCount holds the default value on creation for the "missing_count" field.
	DefaultMissingCount int
	// DefaultNiceToHaveCount holds the default value on creation for the "nice_to_have_count" field.
	DefaultNiceToHaveCount int
	// DefaultRoadmapHours holds the default value on creation for the "roadmap_hours" field.
	DefaultRoadmapHours int
	// DefaultRoadmapSource holds the default value on creation for the "roadmap_source" field.
	DefaultRoadmapSource string
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTargetRole orders the results by the target_role field.
func ByTargetRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetRole, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByReadinessLevel orders the results by the readiness_level field.
func ByReadinessLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadinessLevel, opts...).ToFunc()
}

// ByMissingCount orders the results by the missing_count field.
func ByMissingCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissingCount, opts...).ToFunc()
}

// ByNiceToHaveCount orders the results by the nice_to_have_count field.
func ByNiceToHaveCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNiceToHaveCount, opts...).ToFunc()
}

// ByRoadmapHours orders the results by the roadmap_hours field.
func ByRoadmapHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoadmapHours, opts...).ToFunc()
}

// ByRoadmapSource orders the results by the roadmap_source field.
func ByRoadmapSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoadmapSource, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
