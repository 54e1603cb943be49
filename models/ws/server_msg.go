package wsmodels

const (
	EventNewApplication = "new_application"
	EventNewTicket      = "new_ticket"
	EventNewSubscriber  = "new_subscriber"
)

type ServerMessage struct {
	Time string `json:"time"` // event time
	Code string `json:"code"` // event code
	Msg  string `json:"msg"`  // event text
}
