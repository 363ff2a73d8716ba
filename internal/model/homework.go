package model

// Homework represents a single review record from the homework statuses API.
// Fields are pointers so that a key missing from the payload is
// distinguishable from one present with an empty value.
type Homework struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// StatusPage holds a validated homework statuses response: the review
// records plus the server timestamp to use as the next from_date cursor.
type StatusPage struct {
	Homeworks   []Homework
	CurrentDate int64
}

// Report is a notification candidate: the homework name and the rendered
// message text. Reports are comparable; equality drives de-duplication.
type Report struct {
	Name string
	Text string
}
