package recorder

// Delivery kinds stored in the journal.
const (
	KindStatus = "STATUS"
	KindFault  = "FAULT"
	KindDigest = "DIGEST"
)

// DeliveryEvent records one successfully sent notification.
type DeliveryEvent struct {
	ID       string
	Kind     string // KindStatus, KindFault or KindDigest
	Homework string
	Message  string
}

// Recorder journals sent notifications for later inspection. The poll loop
// never reads the journal back; it is a write-only audit trail.
type Recorder interface {
	RecordDelivery(evt *DeliveryEvent) error
	Close() error
}
