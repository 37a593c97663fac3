package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one pipeline run against a target role:
// the gap found, the readiness score, and the roadmap size.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the assessment belongs to"),
		field.String("target_role").
			NotEmpty().
			Comment("Role key or free-form role name"),
		field.Float("overall_score").
			Default(0).
			Comment("Weighted readiness score, 0-1"),
		field.String("readiness_level").
			Default("").
			Comment("Readiness bucket label"),
		field.Int("missing_count").
			Default(0).
			Comment("Missing skills found by gap analysis"),
		field.Int("nice_to_have_count").
			Default(0).
			Comment("Complementary skills suggested"),
		field.Int("roadmap_hours").
			Default(0).
			Comment("Total estimated learning hours"),
		field.String("roadmap_source").
			Default("").
			Comment("llm or fallback"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock pipeline duration"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("target_role"),
	}
}
