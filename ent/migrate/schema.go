// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "review_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_review_records_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ReviewRecordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_review_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// ReviewRecordsColumns holds the columns for the "review_records" table.
	ReviewRecordsColumns = []*schema.Column{
		{Name: "call_log_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "review_result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "has_api_failures", Type: field.TypeBool, Default: false},
		{Name: "has_wrong_actions", Type: field.TypeBool, Default: false},
		{Name: "has_wrong_outputs", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// ReviewRecordsTable holds the schema information for the "review_records" table.
	ReviewRecordsTable = &schema.Table{
		Name:       "review_records",
		Columns:    ReviewRecordsColumns,
		PrimaryKey: []*schema.Column{ReviewRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewrecord_status",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[2]},
			},
			{
				Name:    "reviewrecord_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[1]},
			},
			{
				Name:    "reviewrecord_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[2], ReviewRecordsColumns[10]},
			},
			{
				Name:    "reviewrecord_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[2], ReviewRecordsColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		ReviewRecordsTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = ReviewRecordsTable
}
