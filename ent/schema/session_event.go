package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records the creation of a planning session: where the
// skills came from and what they were.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping this session's events"),
		field.String("source").
			NotEmpty().
			Comment("Where the skills came from: resume or manual"),
		field.String("extraction_method").
			Default("").
			Comment("How skills were extracted: llm, pattern, or empty for manual"),
		field.Text("resume_text").
			Default("").
			Comment("Raw resume text for resume-sourced sessions"),
		field.JSON("skills", []string{}).
			Comment("Normalized skill identifiers"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("source"),
	}
}
