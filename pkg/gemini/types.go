package gemini

// GenerateContentRequest is the body of a `generateContent` call.
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// NewTextRequest wraps `text` in a request holding a single content with a
// single part.
func NewTextRequest(text string) *GenerateContentRequest {
	return &GenerateContentRequest{
		Contents: []Content{
			{
				Parts: []Part{{Text: text}},
			},
		},
	}
}
