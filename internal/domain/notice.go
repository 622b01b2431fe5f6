package domain

// NoticeKind identifies an advisory notification produced by a store mutation.
type NoticeKind string

const (
	NoticeAdded          NoticeKind = "added"
	NoticeAlreadyPresent NoticeKind = "already_present"
	NoticeRemoved        NoticeKind = "removed"
	NoticeCleared        NoticeKind = "cleared"
)

// Notice is a cosmetic, user-facing message. Notices never affect control flow;
// callers decide whether and how to surface them.
type Notice struct {
	Kind       NoticeKind `json:"kind"`
	Message    string     `json:"message"`
	LocationID string     `json:"location_id,omitempty"`
}
