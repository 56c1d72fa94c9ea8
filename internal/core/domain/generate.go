package domain

// GenerateRequest is a client prompt with optional media for the generative model
type GenerateRequest struct {
	Prompt string
	Files  []*FileUpload
}

// GenerateResponse carries the raw body returned by the generative model
type GenerateResponse struct {
	RawResponse string `json:"rawResponse"`
}

// InlineMedia is a file sent inline to the generative model
type InlineMedia struct {
	MimeType string
	Data     []byte
}

// PromptTemplates are the instruction blocks appended to every prompt
type PromptTemplates struct {
	Auto    string
	RWA     string
	General string
}
