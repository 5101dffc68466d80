package constant

const (
	// Document ingestion status
	DocumentStatusPending = "pending"
	DocumentStatusReady   = "ready"
	DocumentStatusFailed  = "failed"

	// Session greeting shown when a new advising session is created
	SessionGreeting = "Welcome to College Buddy! I am here to help you stay organized, find information fast and provide assistance with academic advising at Texas Tech University. Feel free to ask me a question below."

	DefaultSessionTitle = "New advising session"

	// Max accepted upload size for DOCX files
	MaxUploadBytes = 10 * 1024 * 1024
)
