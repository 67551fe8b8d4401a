package shell

// NotificationKind classifies a user-facing message
type NotificationKind int

const (
	NotifyInfo NotificationKind = iota
	NotifyWarning
	NotifyError
)

// String returns the string representation of the kind
func (k NotificationKind) String() string {
	switch k {
	case NotifyInfo:
		return "info"
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a message box shown to the user
type Notification struct {
	Kind    NotificationKind
	Title   string
	Message string
	Err     error
}

func warningNotification() Notification {
	return Notification{
		Kind:    NotifyWarning,
		Title:   "No passwords",
		Message: "No password generated, nothing is copied.",
		Err:     ErrEmptyCopyRequest,
	}
}

func confirmationNotification() Notification {
	return Notification{
		Kind:    NotifyInfo,
		Title:   "Copied",
		Message: "The passwords are copied to the clipboard!",
	}
}

func errorNotification(title string, err error) Notification {
	return Notification{
		Kind:    NotifyError,
		Title:   title,
		Message: err.Error(),
		Err:     err,
	}
}
