package response

// NotificationAck is the body returned to the provider's notify callback.
// The provider only inspects the HTTP status; the body is for humans reading
// gateway delivery logs.

type NotificationAck struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

func AckSuccess() NotificationAck {
	return NotificationAck{Code: "0", Msg: "success"}
}
