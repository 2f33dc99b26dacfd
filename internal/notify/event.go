package notify

// Event is a push notification to deliver off the request path.
type Event struct {
	UserID   string // recipient; ignored when ToAdmins is set
	ToAdmins bool
	Title    string
	Body     string
	Data     map[string]any
}
