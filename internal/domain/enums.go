package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleLawyer    UserRole = "LAWYER"
	UserRoleAssistant UserRole = "ASSISTANT"
	UserRoleClient    UserRole = "CLIENT"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleLawyer, UserRoleAssistant, UserRoleClient:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// IsStaff reports whether the role belongs to the firm (not a client).
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleLawyer || r == UserRoleAssistant
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeUser         EntityType = "USER"
	EntityTypeClient       EntityType = "CLIENT"
	EntityTypeCase         EntityType = "CASE"
	EntityTypeDocument     EntityType = "DOCUMENT"
	EntityTypeAppointment  EntityType = "APPOINTMENT"
	EntityTypeActivity     EntityType = "ACTIVITY"
	EntityTypeNotification EntityType = "NOTIFICATION"
	EntityTypeReport       EntityType = "REPORT"
	EntityTypeTemplate     EntityType = "TEMPLATE"
	EntityTypeSystem       EntityType = "SYSTEM"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeClient, EntityTypeCase, EntityTypeDocument,
		EntityTypeAppointment, EntityTypeActivity, EntityTypeNotification,
		EntityTypeReport, EntityTypeTemplate, EntityTypeSystem:
		return true
	}
	return false
}

// Label returns the lowercase human-readable name used in audit descriptions.
func (e EntityType) Label() string {
	switch e {
	case EntityTypeUser:
		return "user"
	case EntityTypeClient:
		return "client"
	case EntityTypeCase:
		return "case"
	case EntityTypeDocument:
		return "document"
	case EntityTypeAppointment:
		return "appointment"
	case EntityTypeActivity:
		return "activity"
	case EntityTypeNotification:
		return "notification"
	case EntityTypeReport:
		return "report"
	case EntityTypeTemplate:
		return "template"
	case EntityTypeSystem:
		return "system"
	}
	return "entity"
}

// AuditAction represents the kind of event recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate    AuditAction = "CREATE"
	AuditActionUpdate    AuditAction = "UPDATE"
	AuditActionDelete    AuditAction = "DELETE"
	AuditActionLogin     AuditAction = "LOGIN"
	AuditActionLogout    AuditAction = "LOGOUT"
	AuditActionView      AuditAction = "VIEW"
	AuditActionDownload  AuditAction = "DOWNLOAD"
	AuditActionExport    AuditAction = "EXPORT"
	AuditActionUpload    AuditAction = "UPLOAD"
	AuditActionApprove   AuditAction = "APPROVE"
	AuditActionReject    AuditAction = "REJECT"
	AuditActionArchive   AuditAction = "ARCHIVE"
	AuditActionRestore   AuditAction = "RESTORE"
	AuditActionShare     AuditAction = "SHARE"
	AuditActionUnshare   AuditAction = "UNSHARE"
	AuditActionDuplicate AuditAction = "DUPLICATE"
	AuditActionGenerate  AuditAction = "GENERATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionLogin, AuditActionLogout, AuditActionView,
		AuditActionDownload, AuditActionExport, AuditActionUpload,
		AuditActionApprove, AuditActionReject, AuditActionArchive,
		AuditActionRestore, AuditActionShare, AuditActionUnshare,
		AuditActionDuplicate, AuditActionGenerate:
		return true
	}
	return false
}

// TemplateType classifies what a template produces.
type TemplateType string

const (
	TemplateTypeDocument TemplateType = "DOCUMENT"
	TemplateTypePetition TemplateType = "PETITION"
	TemplateTypeContract TemplateType = "CONTRACT"
	TemplateTypeLetter   TemplateType = "LETTER"
	TemplateTypeEmail    TemplateType = "EMAIL"
	TemplateTypeReport   TemplateType = "REPORT"
	TemplateTypeOther    TemplateType = "OTHER"
)

func (t TemplateType) String() string { return string(t) }

func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateTypeDocument, TemplateTypePetition, TemplateTypeContract,
		TemplateTypeLetter, TemplateTypeEmail, TemplateTypeReport, TemplateTypeOther:
		return true
	}
	return false
}

// VariableType is the input kind of a template variable.
type VariableType string

const (
	VariableTypeText     VariableType = "TEXT"
	VariableTypeTextarea VariableType = "TEXTAREA"
	VariableTypeNumber   VariableType = "NUMBER"
	VariableTypeDate     VariableType = "DATE"
	VariableTypeSelect   VariableType = "SELECT"
	VariableTypeBoolean  VariableType = "BOOLEAN"
)

func (v VariableType) String() string { return string(v) }

func (v VariableType) IsValid() bool {
	switch v {
	case VariableTypeText, VariableTypeTextarea, VariableTypeNumber,
		VariableTypeDate, VariableTypeSelect, VariableTypeBoolean:
		return true
	}
	return false
}

// NotificationType categorizes a notification for display.
type NotificationType string

const (
	NotificationTypeInfo        NotificationType = "INFO"
	NotificationTypeSuccess     NotificationType = "SUCCESS"
	NotificationTypeWarning     NotificationType = "WARNING"
	NotificationTypeError       NotificationType = "ERROR"
	NotificationTypeReminder    NotificationType = "REMINDER"
	NotificationTypeAppointment NotificationType = "APPOINTMENT"
	NotificationTypeCaseUpdate  NotificationType = "CASE_UPDATE"
	NotificationTypeDocument    NotificationType = "DOCUMENT"
	NotificationTypeSystem      NotificationType = "SYSTEM"
)

func (n NotificationType) String() string { return string(n) }

func (n NotificationType) IsValid() bool {
	switch n {
	case NotificationTypeInfo, NotificationTypeSuccess, NotificationTypeWarning,
		NotificationTypeError, NotificationTypeReminder, NotificationTypeAppointment,
		NotificationTypeCaseUpdate, NotificationTypeDocument, NotificationTypeSystem:
		return true
	}
	return false
}

// NotificationPriority orders notifications by urgency.
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "LOW"
	NotificationPriorityMedium NotificationPriority = "MEDIUM"
	NotificationPriorityHigh   NotificationPriority = "HIGH"
	NotificationPriorityUrgent NotificationPriority = "URGENT"
)

func (p NotificationPriority) String() string { return string(p) }

func (p NotificationPriority) IsValid() bool {
	switch p {
	case NotificationPriorityLow, NotificationPriorityMedium,
		NotificationPriorityHigh, NotificationPriorityUrgent:
		return true
	}
	return false
}

// SearchType selects which entities a unified search covers.
type SearchType string

const (
	SearchTypeAll          SearchType = "ALL"
	SearchTypeClients      SearchType = "CLIENTS"
	SearchTypeCases        SearchType = "CASES"
	SearchTypeDocuments    SearchType = "DOCUMENTS"
	SearchTypeAppointments SearchType = "APPOINTMENTS"
)

func (s SearchType) String() string { return string(s) }

func (s SearchType) IsValid() bool {
	switch s {
	case SearchTypeAll, SearchTypeClients, SearchTypeCases,
		SearchTypeDocuments, SearchTypeAppointments:
		return true
	}
	return false
}

// Includes reports whether a search of type s covers entities of kind other.
func (s SearchType) Includes(other SearchType) bool {
	return s == SearchTypeAll || s == other
}

// StatsPeriod is the window used by audit statistics.
type StatsPeriod string

const (
	StatsPeriodToday StatsPeriod = "today"
	StatsPeriodWeek  StatsPeriod = "week"
	StatsPeriodMonth StatsPeriod = "month"
	StatsPeriodYear  StatsPeriod = "year"
)

func (p StatsPeriod) IsValid() bool {
	switch p {
	case StatsPeriodToday, StatsPeriodWeek, StatsPeriodMonth, StatsPeriodYear:
		return true
	}
	return false
}
