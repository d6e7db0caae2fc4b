// internal/domain/homework/homework.go
package homework

// Status is the review state of a submitted homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps each known status to the text sent to the chat.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable text for s and whether s is known.
func (s Status) Verdict() (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Record is a single entry of the "homeworks" array.
// Fields that are absent or not strings in the payload are left empty.
type Record struct {
	Name   string
	Status Status
}

// Response is a validated API answer.
type Response struct {
	Homeworks []Record
	// CurrentDate is the server time, used as from_date of the next poll.
	CurrentDate    int64
	HasCurrentDate bool
}
