// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "s3_key", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "owner_type", Type: field.TypeEnum, Enums: []string{"prospect", "visit"}},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_attachments", Type: field.TypeUUID, Nullable: true},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attachments_users_attachments",
				Columns:    []*schema.Column{AttachmentsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_owner_type_owner_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[5], AttachmentsColumns[6]},
			},
			{
				Name:    "attachment_s3_key",
				Unique:  true,
				Columns: []*schema.Column{AttachmentsColumns[1]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "changes", Type: field.TypeJSON, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_audit_logs", Type: field.TypeUUID, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_users_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[3]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "billing_contact", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// ProspectsColumns holds the columns for the "prospects" table.
	ProspectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "name_folded", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Nullable: true, Enums: []string{"hotel", "restaurant", "traiteur", "ecole", "hopital", "autre"}},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Default: "France"},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "manager_name", Type: field.TypeString, Nullable: true},
		{Name: "opening_hours", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"to_visit", "in_progress", "converted", "lost"}, Default: "to_visit"},
		{Name: "note_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "visits_count", Type: field.TypeInt, Default: 0},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "google_place_id", Type: field.TypeString, Nullable: true},
		{Name: "ai_data", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_enriched_at", Type: field.TypeTime, Nullable: true},
		{Name: "ai_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_prospects", Type: field.TypeUUID, Nullable: true},
		{Name: "user_created_prospects", Type: field.TypeUUID, Nullable: true},
	}
	// ProspectsTable holds the schema information for the "prospects" table.
	ProspectsTable = &schema.Table{
		Name:       "prospects",
		Columns:    ProspectsColumns,
		PrimaryKey: []*schema.Column{ProspectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prospects_companies_prospects",
				Columns:    []*schema.Column{ProspectsColumns[24]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "prospects_users_created_prospects",
				Columns:    []*schema.Column{ProspectsColumns[25]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prospect_status",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[13]},
			},
			{
				Name:    "prospect_name_folded",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[2]},
			},
			{
				Name:    "prospect_city",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[6]},
			},
			{
				Name:    "prospect_type",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[3]},
			},
			{
				Name:    "prospect_latitude_longitude",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[16], ProspectsColumns[17]},
			},
			{
				Name:    "prospect_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[22]},
			},
		},
	}
	// RefreshTokensColumns holds the columns for the "refresh_tokens" table.
	RefreshTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "token_hash", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_refresh_tokens", Type: field.TypeUUID},
	}
	// RefreshTokensTable holds the schema information for the "refresh_tokens" table.
	RefreshTokensTable = &schema.Table{
		Name:       "refresh_tokens",
		Columns:    RefreshTokensColumns,
		PrimaryKey: []*schema.Column{RefreshTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "refresh_tokens_users_refresh_tokens",
				Columns:    []*schema.Column{RefreshTokensColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "refreshtoken_token_hash",
				Unique:  true,
				Columns: []*schema.Column{RefreshTokensColumns[1]},
			},
			{
				Name:    "refreshtoken_expires_at",
				Unique:  false,
				Columns: []*schema.Column{RefreshTokensColumns[2]},
			},
		},
	}
	// ToursColumns holds the columns for the "tours" table.
	ToursColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planned", "in_progress", "completed", "cancelled"}, Default: "planned"},
		{Name: "total_distance_km", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_duration_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "route_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_tours", Type: field.TypeUUID, Nullable: true},
		{Name: "user_tours", Type: field.TypeUUID},
	}
	// ToursTable holds the schema information for the "tours" table.
	ToursTable = &schema.Table{
		Name:       "tours",
		Columns:    ToursColumns,
		PrimaryKey: []*schema.Column{ToursColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tours_companies_tours",
				Columns:    []*schema.Column{ToursColumns[9]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tours_users_tours",
				Columns:    []*schema.Column{ToursColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tour_date",
				Unique:  false,
				Columns: []*schema.Column{ToursColumns[2]},
			},
			{
				Name:    "tour_status",
				Unique:  false,
				Columns: []*schema.Column{ToursColumns[3]},
			},
		},
	}
	// TourStepsColumns holds the columns for the "tour_steps" table.
	TourStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "done", "skipped"}, Default: "pending"},
		{Name: "eta", Type: field.TypeTime, Nullable: true},
		{Name: "distance_from_previous_km", Type: field.TypeFloat64, Nullable: true},
		{Name: "duration_from_previous_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "prospect_steps", Type: field.TypeUUID},
		{Name: "tour_steps", Type: field.TypeUUID},
	}
	// TourStepsTable holds the schema information for the "tour_steps" table.
	TourStepsTable = &schema.Table{
		Name:       "tour_steps",
		Columns:    TourStepsColumns,
		PrimaryKey: []*schema.Column{TourStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tour_steps_prospects_steps",
				Columns:    []*schema.Column{TourStepsColumns[9]},
				RefColumns: []*schema.Column{ProspectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tour_steps_tours_steps",
				Columns:    []*schema.Column{TourStepsColumns[10]},
				RefColumns: []*schema.Column{ToursColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tourstep_step_order_tour_steps",
				Unique:  true,
				Columns: []*schema.Column{TourStepsColumns[1], TourStepsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "manager", "rep"}, Default: "rep"},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "locale", Type: field.TypeString, Default: "fr"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_users", Type: field.TypeUUID, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_companies_users",
				Columns:    []*schema.Column{UsersColumns[13]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_is_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
		},
	}
	// VisitsColumns holds the columns for the "visits" table.
	VisitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "visited_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "objective", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "signed_by", Type: field.TypeString, Nullable: true},
		{Name: "signature_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "prospect_visits", Type: field.TypeUUID},
		{Name: "tour_visits", Type: field.TypeUUID, Nullable: true},
		{Name: "user_visits", Type: field.TypeUUID},
	}
	// VisitsTable holds the schema information for the "visits" table.
	VisitsTable = &schema.Table{
		Name:       "visits",
		Columns:    VisitsColumns,
		PrimaryKey: []*schema.Column{VisitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "visits_prospects_visits",
				Columns:    []*schema.Column{VisitsColumns[10]},
				RefColumns: []*schema.Column{ProspectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "visits_tours_visits",
				Columns:    []*schema.Column{VisitsColumns[11]},
				RefColumns: []*schema.Column{ToursColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "visits_users_visits",
				Columns:    []*schema.Column{VisitsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "visit_visited_at",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[1]},
			},
			{
				Name:    "visit_score",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttachmentsTable,
		AuditLogsTable,
		CompaniesTable,
		ProspectsTable,
		RefreshTokensTable,
		ToursTable,
		TourStepsTable,
		UsersTable,
		VisitsTable,
	}
)

func init() {
	AttachmentsTable.ForeignKeys[0].RefTable = UsersTable
	AuditLogsTable.ForeignKeys[0].RefTable = UsersTable
	ProspectsTable.ForeignKeys[0].RefTable = CompaniesTable
	ProspectsTable.ForeignKeys[1].RefTable = UsersTable
	RefreshTokensTable.ForeignKeys[0].RefTable = UsersTable
	ToursTable.ForeignKeys[0].RefTable = CompaniesTable
	ToursTable.ForeignKeys[1].RefTable = UsersTable
	TourStepsTable.ForeignKeys[0].RefTable = ProspectsTable
	TourStepsTable.ForeignKeys[1].RefTable = ToursTable
	UsersTable.ForeignKeys[0].RefTable = CompaniesTable
	VisitsTable.ForeignKeys[0].RefTable = ProspectsTable
	VisitsTable.ForeignKeys[1].RefTable = ToursTable
	VisitsTable.ForeignKeys[2].RefTable = UsersTable
}
