package domain

// ChatRequest is the inbound chat payload
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the outbound chat payload, used for errors as well
type ChatResponse struct {
	Reply string `json:"reply"`
}
