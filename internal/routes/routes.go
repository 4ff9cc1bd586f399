package routes

const (
	// Health
	Health = "/health"

	// Auth / session
	UserLogin    = "/api/user/login"
	UserRegister = "/api/user/register"
	UserLogout   = "/api/user/logout"
	UserMe       = "/api/user/me"
	UserSession  = "/api/user/session"

	// Senior citizens
	CitizensBase       = "/api/senior-citizens"
	CitizenByID        = "/api/senior-citizens/get/{id}"
	CitizenCreate      = "/api/senior-citizens/create"
	CitizenUpdate      = "/api/senior-citizens/update/{id}"
	CitizenDelete      = "/api/senior-citizens/delete/{id}"
	CitizensPage       = "/api/senior-citizens/page"
	CitizensSearch     = "/api/senior-citizens/search/{term}"
	CitizensByBarangay = "/api/senior-citizens/barangay/{name}"

	// Officials
	MunicipalOfficials    = "/api/officials/municipal"
	MunicipalOfficialByID = "/api/officials/municipal/{id}"
	BarangayOfficials     = "/api/officials/barangay"
	BarangayOfficialByID  = "/api/officials/barangay/{id}"

	// SMS
	SmsSend        = "/api/sms/send-sms"
	SmsLogs        = "/api/sms/logs"
	SmsHistory     = "/api/sms/history"
	SmsDeleteLog   = "/api/sms/delete/{id}"
	SmsCredentials = "/api/sms/sms-credentials"

	// Audit trail
	AuditLogsGetAll = "/api/audit-logs/getAll"

	// Static
	UploadsPrefix = "/uploads/"
)
