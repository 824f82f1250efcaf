package request

// SendMessageRequest mirrors the provider's outbound message body. Beyond
// recipient and type the simulator validates nothing; it accepts what a
// real provider would ack and lets the payload ride along.
type SendMessageRequest struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to" binding:"required"`
	Type             string           `json:"type" binding:"required"`
	Text             *TextBody        `json:"text,omitempty"`
	Image            *MediaBody       `json:"image,omitempty"`
	Document         *MediaBody       `json:"document,omitempty"`
	Location         *LocationBody    `json:"location,omitempty"`
	Interactive      *InteractiveBody `json:"interactive,omitempty"`
	Template         *TemplateBody    `json:"template,omitempty"`
}

type TextBody struct {
	Body string `json:"body"`
}

type MediaBody struct {
	ID       string `json:"id,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type LocationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
}

type InteractiveBody struct {
	Type   string      `json:"type"`
	Body   *TextBody   `json:"body,omitempty"`
	Action *ActionBody `json:"action,omitempty"`
}

type ActionBody struct {
	Buttons []Button `json:"buttons,omitempty"`
}

type Button struct {
	Type  string      `json:"type,omitempty"`
	Reply ButtonReply `json:"reply"`
}

type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type TemplateBody struct {
	Name     string `json:"name"`
	Language struct {
		Code string `json:"code"`
	} `json:"language"`
}

// RegisterWebhookRequest subscribes a callback URL to published events.
type RegisterWebhookRequest struct {
	URL         string `json:"url" binding:"required"`
	VerifyToken string `json:"verify_token"`
}

// SimulateInboundRequest is the test-harness entry point for inbound
// traffic. Empty fields are filled with synthetic data.
type SimulateInboundRequest struct {
	From string `json:"from,omitempty"`
	Name string `json:"name,omitempty"`
	Body string `json:"body,omitempty"`
}
