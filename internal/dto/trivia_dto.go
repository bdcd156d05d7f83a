package dto

// TriviaResponse is the strict JSON shape requested from the model.
type TriviaResponse struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}
